package errorkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a sentinel error that can be declared as a constant.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to err.
// The result matches both err and the cause with errors.Is.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &causedError{kind: err, cause: cause}
}

// F wraps a formatted cause.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type causedError struct {
	kind  Error
	cause error
}

func (e *causedError) Error() string { return string(e.kind) + ": " + e.cause.Error() }

func (e *causedError) Is(target error) bool { return target == e.kind }

func (e *causedError) Unwrap() error { return e.cause }

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, stream.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge will combine all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, the error value is returned.
func Merge(errs ...error) error {
	var cleanErrs []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		cleanErrs = append(cleanErrs, err)
	}
	switch len(cleanErrs) {
	case 0:
		return nil
	case 1:
		return cleanErrs[0]
	}
	return multiError(cleanErrs)
}

type multiError []error

func (errs multiError) Error() string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
