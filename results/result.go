// Package results provides Result, the flat (value, error) pair form of an outcome, and converts it to
// and from either.Either[R, error].
package results

import "github.com/abevier/outcome/either"

type Result[R any] struct {
	Val R
	Err error
}

func New[R any](val R, err error) Result[R] {
	return Result[R]{Val: val, Err: err}
}

func Success[R any](val R) Result[R] {
	return Result[R]{Val: val}
}

func Failure[R any](err error) Result[R] {
	return Result[R]{Err: err}
}

// Either converts r into an Either.  A non-nil Err puts it on the error side and Val is dropped.
func (r Result[R]) Either() either.Either[R, error] {
	return either.FromPair(r.Val, r.Err)
}

// FromEither converts e into a Result.  An error side yields R's zero value for Val, and an error
// side holding a nil error yields either.ErrNilError for Err.
func FromEither[R any](e either.Either[R, error]) Result[R] {
	val, err := either.Unpack(e)
	return New(val, err)
}

// Collect returns the value of every result in order if none of them failed.  Otherwise it returns
// the first error found and no values.
func Collect[R any](rs []Result[R]) ([]R, error) {
	vals := make([]R, 0, len(rs))

	for _, r := range rs {
		v, err := either.Unpack(r.Either())
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	return vals, nil
}
