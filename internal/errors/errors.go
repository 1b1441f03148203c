package errors

import "github.com/juju/errors"

// New is equivalent to New from the github.com/juju/errors package.
func New(message string) error {
	return errors.New(message)
}

// Annotate is equivalent to Annotate from the github.com/juju/errors package.
func Annotate(other error, message string) error {
	return errors.Annotate(other, message)
}

// Annotatef is equivalent to Annotatef from the github.com/juju/errors package.
func Annotatef(other error, format string, args ...interface{}) error {
	return errors.Annotatef(other, format, args...)
}

// Errorf is equivalent to Errorf from the github.com/juju/errors package.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Cause is equivalent to Cause from the github.com/juju/errors package.
func Cause(err error) error {
	return errors.Cause(err)
}

type tooShort struct {
	errors.Err
	required, available int
}

// NewTooShort constructs a new error indicating that a buffer with
// available bytes was too short for a protocol unit requiring required
// bytes.
func NewTooShort(required, available int) error {
	err := errors.NewErr("buffer too short: need %v bytes, have %v", required, available)
	err.SetLocation(1)
	return &tooShort{Err: err, required: required, available: available}
}

// IsTooShort returns true if err is a too-short error as constructed using
// NewTooShort.
func IsTooShort(err error) bool {
	_, ok := errors.Cause(err).(*tooShort)
	return ok
}

// TooShortLengths returns the required and available byte counts recorded
// in a too-short error. If err is not a too-short error, ok is false.
func TooShortLengths(err error) (required, available int, ok bool) {
	ts, ok := errors.Cause(err).(*tooShort)
	if !ok {
		return 0, 0, false
	}
	return ts.required, ts.available, true
}
