package app

import "github.com/pkg/errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	err = errors.Cause(err)
	if ire, ok := err.(invalidReqErr); ok {
		return ire.IsInvalidRequest()
	}

	return false
}

// ProjectNotReadyError is special error type returned when a forked project
// doesn't become ready within the bounded readiness poll
type ProjectNotReadyError string

// Error implements error interface
func (e ProjectNotReadyError) Error() string {
	return string(e)
}

// IsProjectNotReady tells that this error is 'project not ready'.
// Returns always true.
func (ProjectNotReadyError) IsProjectNotReady() bool {
	return true
}

// IsProjectNotReadyError checks if given error is caused by a project readiness timeout
func IsProjectNotReadyError(err error) bool {
	type notReadyErr interface {
		IsProjectNotReady() bool
	}

	err = errors.Cause(err)
	if nre, ok := err.(notReadyErr); ok {
		return nre.IsProjectNotReady()
	}

	return false
}

// TooManyRequestsError is special error type returned when the api call rate limit interrupts a request
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded call rate
func IsTooManyRequestsError(err error) bool {
	type tooManyReqErr interface {
		IsTooManyRequests() bool
	}

	err = errors.Cause(err)
	if tme, ok := err.(tooManyReqErr); ok {
		return tme.IsTooManyRequests()
	}

	return false
}
