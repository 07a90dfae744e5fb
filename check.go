package tuple

import "fmt"

// CheckIndex panics with an error wrapping [ErrIndexOutOfRange] if i
// is not in [0, n).
func CheckIndex(op string, i, n int) {
	if (i >= 0) && (i < n) {
		return
	}
	fail(op, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n), "index", i, "size", n)
}

// CheckLen panics with an error wrapping [ErrSizeMismatch] if got is
// not exactly n.
func CheckLen(op string, got, n int) {
	if got == n {
		return
	}
	fail(op, fmt.Errorf("%w: length %d, want %d", ErrSizeMismatch, got, n), "length", got, "size", n)
}

// CheckRoom panics with an error wrapping [ErrSizeMismatch] if got is
// less than n.
func CheckRoom(op string, got, n int) {
	if got >= n {
		return
	}
	fail(op, fmt.Errorf("%w: length %d, want at least %d", ErrSizeMismatch, got, n), "length", got, "size", n)
}

// CheckNotNil panics with an error wrapping [ErrNilArgument] if ok is
// false. Callers pass the result of their own nil comparison, since a
// typed nil inside an interface can only be detected by the caller.
func CheckNotNil(op, name string, ok bool) {
	if ok {
		return
	}
	fail(op, fmt.Errorf("%w: %s", ErrNilArgument, name), "argument", name)
}

// CheckValid panics with an error wrapping [ErrInvalidComponent] if ok
// is false.
func CheckValid(op string, component int, ok bool) {
	if ok {
		return
	}
	fail(op, fmt.Errorf("%w: component %d", ErrInvalidComponent, component), "component", component)
}

// Arithmetic panics with an error wrapping both [ErrArithmetic] and
// err. It is used by numeric kinds whose underlying library returns
// domain errors instead of panicking.
func Arithmetic(op string, err error) {
	err = fmt.Errorf("%w: %w", ErrArithmetic, err)
	Logger().Info("arithmetic failed", "op", op, "err", err)
	panic(err)
}

func fail(op string, err error, args ...any) {
	Logger().Info("precondition violated", append([]any{"op", op, "err", err}, args...)...)
	panic(err)
}
