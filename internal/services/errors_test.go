package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestProviderErrorMapsRateLimit(t *testing.T) {
	err := providerError(mongo.CommandError{Code: 16500, Message: "TooManyRequests"})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestProviderErrorPassesThroughOtherErrors(t *testing.T) {
	original := errors.New("network down")
	assert.Equal(t, original, providerError(original))

	cmdErr := mongo.CommandError{Code: 11000, Message: "duplicate key"}
	assert.Equal(t, error(cmdErr), providerError(cmdErr))
}
