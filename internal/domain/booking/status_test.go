package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookwise-app/booking-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		s, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, invalid := range []string{"", "done", "Pending", "CANCELLED", "scheduled"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
