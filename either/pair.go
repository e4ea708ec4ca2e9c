package either

// FromPair converts Go's (value, error) return convention into an Either.  A non-nil err yields the
// error side, otherwise v is held on the result side.
func FromPair[R any](v R, err error) Either[R, error] {
	if err != nil {
		return Error[R](err)
	}
	return Result[R, error](v)
}

// Try calls fn once and wraps what it returned with FromPair.
func Try[R any](fn func() (R, error)) Either[R, error] {
	v, err := fn()
	return FromPair(v, err)
}

// Unpack is the inverse of FromPair.  It returns (result, nil) for the result side and
// (zero R, err) for the error side.  An error side holding a nil error, which includes the zero
// Either, yields ErrNilError so the pair still reads as a failure.
func Unpack[R any](e Either[R, error]) (R, error) {
	var err error

	// handlers are non-nil so Match cannot fail
	v, _ := Match(e,
		func(r R) R { return r },
		func(cause error) R {
			err = cause
			if err == nil {
				err = ErrNilError
			}
			return *new(R)
		},
	)
	return v, err
}
