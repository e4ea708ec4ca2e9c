package either

import "errors"

var (
	// ErrInvalidArgument is wrapped by every *ArgumentError
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilError is reported by Unpack for an error side that holds a nil error
	ErrNilError = errors.New("either holds a nil error")
)

// ArgumentError is returned by Match, Choose, Handle and Run when a required function is nil.
type ArgumentError struct {
	// Name is the parameter that was nil, either "onResult" or "onError".
	Name string
}

func (e *ArgumentError) Error() string {
	return ErrInvalidArgument.Error() + ": " + e.Name + " must not be nil"
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func checkHandlers(resultMissing, errorMissing bool) error {
	if resultMissing {
		return &ArgumentError{Name: "onResult"}
	}
	if errorMissing {
		return &ArgumentError{Name: "onError"}
	}
	return nil
}
