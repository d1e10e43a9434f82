package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInactiveAccount = errors.New("account is inactive")
	ErrRequestNotFound = errors.New("payment request not found")
	ErrClassNotFound   = errors.New("live class not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrNotAnImage      = errors.New("url does not point to an image")
	// ErrQuotaExceeded surfaces rate-limit responses from the external
	// provider so handlers can answer 429 instead of a generic 500.
	ErrQuotaExceeded = errors.New("provider quota exceeded")
)

// providerError maps rate-limit responses from the hosted database onto
// ErrQuotaExceeded. Code 16500 is the TooManyRequests code used by hosted
// Mongo-compatible backends.
func providerError(err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 16500 {
		return ErrQuotaExceeded
	}
	return err
}
