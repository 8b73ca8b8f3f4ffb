package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("booking_not_found")

	assert.True(t, IsBusiness(err, "booking_not_found"))
	assert.False(t, IsBusiness(err, "other_code"))
	assert.False(t, IsBusiness(errors.New("plain"), "booking_not_found"))
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", ErrBusiness("invalid_status"))

	assert.True(t, IsBusiness(err, "invalid_status"))
}

func TestBusinessCode(t *testing.T) {
	assert.Equal(t, "invalid_status", BusinessCode(ErrBusiness("invalid_status")))
	assert.Equal(t, "", BusinessCode(errors.New("plain")))
	assert.Equal(t, "", BusinessCode(nil))
}
