// Package tuple holds the pieces shared by the fixed-size numeric
// tuple packages vec2, vec3 and vec4: the errors reported when a
// precondition is violated, the checks that report them, and the
// logging hook those checks write to.
//
// The tuples themselves are generic over a numeric kind from package
// num, so one definition of the algebra serves float32, float64,
// int32, int64, fixed-point, arbitrary-precision integer and decimal
// components alike.
package tuple
