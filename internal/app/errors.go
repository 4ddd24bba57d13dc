package app

import "errors"

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

// TooManyRequestsError is returned when outbound calls exceed the allowed rate.
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

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var target interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &target) {
		return target.IsInvalidRequest()
	}

	return false
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit
func IsTooManyRequestsError(err error) bool {
	var target interface {
		IsTooManyRequests() bool
	}
	if errors.As(err, &target) {
		return target.IsTooManyRequests()
	}

	return false
}
