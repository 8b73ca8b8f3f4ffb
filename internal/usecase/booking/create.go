package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/bookwise-app/booking-api/internal/domain/booking"
	"github.com/bookwise-app/booking-api/internal/httperr"
	"github.com/bookwise-app/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	OwnerID uint

	Service string
	Date    string // RFC3339
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	service := strings.TrimSpace(in.Service)
	if len(service) < 2 || len(service) > 50 {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	if len(in.Notes) > 200 {
		return nil, httperr.ErrBusiness("invalid_notes")
	}

	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// Strictly future at submission time.
	if !date.After(time.Now()) {
		return nil, httperr.ErrBusiness("date_not_future")
	}

	b := &models.Booking{
		OwnerID: in.OwnerID,
		Service: service,
		Date:    date,
		Notes:   in.Notes,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
