// Package either provides Either, a value that holds exactly one of two outcomes: a result of type R
// or an error of type E.  It lets code return an expected failure as an ordinary value instead of
// reaching for a panic or an out parameter.
//
// An Either is created with Result or Error and can never change sides afterwards.  The payload is
// only reachable through Match, Choose, Handle, Run and the fallback extractors, so the side that
// was not set can never be observed.
//
// Go has no implicit conversions, so there is no automatic lifting of a bare R or E into an Either.
// Callers always name the side they mean, which keeps Either[T, T] unambiguous.
package either

import "fmt"

// side is implemented by the two variants below and nothing else.
type side[R any, E any] interface {
	isSuccess() bool
}

type success[R any, E any] struct {
	val R
}

func (success[R, E]) isSuccess() bool { return true }

type failure[R any, E any] struct {
	val E
}

func (failure[R, E]) isSuccess() bool { return false }

// Either holds either a result of type R or an error of type E, never both.
//
// Either is an immutable value.  Copies are independent and an instance may be shared between
// goroutines without synchronization.
//
// The zero value is equivalent to Error with E's zero value.
type Either[R any, E any] struct {
	s side[R, E]
}

// Result returns an Either on the result side holding v.
func Result[R any, E any](v R) Either[R, E] {
	return Either[R, E]{s: success[R, E]{val: v}}
}

// Error returns an Either on the error side holding v.
func Error[R any, E any](v E) Either[R, E] {
	return Either[R, E]{s: failure[R, E]{val: v}}
}

// IsSuccess reports whether e holds a result.
func (e Either[R, E]) IsSuccess() bool {
	return e.s != nil && e.s.isSuccess()
}

// String formats e as Result(v) or Error(v).
func (e Either[R, E]) String() string {
	str, _ := Match(e,
		func(r R) string { return fmt.Sprintf("Result(%v)", r) },
		func(v E) string { return fmt.Sprintf("Error(%v)", v) },
	)
	return str
}

// Match calls onResult with the result if e holds one, otherwise it calls onError with the error,
// and returns what the called function returned.  Exactly one of the two functions is called.
//
// If either function is nil Match returns an *ArgumentError and calls neither.  Panics raised by
// the functions are not recovered.
func Match[R any, E any, T any](e Either[R, E], onResult func(R) T, onError func(E) T) (T, error) {
	if err := checkHandlers(onResult == nil, onError == nil); err != nil {
		return *new(T), err
	}

	switch s := e.s.(type) {
	case success[R, E]:
		return onResult(s.val), nil
	case failure[R, E]:
		return onError(s.val), nil
	default:
		return onError(*new(E)), nil
	}
}

// Choose is Match for functions that do not need the payload.
func Choose[R any, E any, T any](e Either[R, E], onResult func() T, onError func() T) (T, error) {
	if err := checkHandlers(onResult == nil, onError == nil); err != nil {
		return *new(T), err
	}

	if e.IsSuccess() {
		return onResult(), nil
	}
	return onError(), nil
}

// Handle calls onResult with the result if e holds one, otherwise it calls onError with the error.
// It follows the same rules as Match.
func (e Either[R, E]) Handle(onResult func(R), onError func(E)) error {
	if err := checkHandlers(onResult == nil, onError == nil); err != nil {
		return err
	}

	_, err := Match(e,
		func(r R) struct{} {
			onResult(r)
			return struct{}{}
		},
		func(v E) struct{} {
			onError(v)
			return struct{}{}
		},
	)
	return err
}

// Run calls onResult if e holds a result and onError otherwise.  It follows the same rules as Match.
func (e Either[R, E]) Run(onResult func(), onError func()) error {
	if err := checkHandlers(onResult == nil, onError == nil); err != nil {
		return err
	}

	if e.IsSuccess() {
		onResult()
	} else {
		onError()
	}
	return nil
}

// ResultOrDefault returns the result held by e, or R's zero value if e holds an error.
func (e Either[R, E]) ResultOrDefault() R {
	return e.ResultOr(*new(R))
}

// ResultOr returns the result held by e, or fallback if e holds an error.
func (e Either[R, E]) ResultOr(fallback R) R {
	// handlers are non-nil so Match cannot fail
	r, _ := Match(e,
		func(r R) R { return r },
		func(E) R { return fallback },
	)
	return r
}

// ErrorOrDefault returns the error held by e, or E's zero value if e holds a result.
func (e Either[R, E]) ErrorOrDefault() E {
	return e.ErrorOr(*new(E))
}

// ErrorOr returns the error held by e, or fallback if e holds a result.
func (e Either[R, E]) ErrorOr(fallback E) E {
	v, _ := Match(e,
		func(R) E { return fallback },
		func(v E) E { return v },
	)
	return v
}
