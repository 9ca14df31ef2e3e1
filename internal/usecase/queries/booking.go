package queries

import (
	"context"

	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var (
	ErrAvailabilityLookupFailed = errs.New("availability lookup failed")
	ErrReservationLookupFailed  = errs.New("reservation lookup failed")
)

type BookingReader interface {
	SearchAvailability(ctx context.Context, req bookingapi.AvailabilityRequest) ([]bookingapi.AvailabilityDay, error)
	MyReservations(ctx context.Context, authToken string) ([]bookingapi.ConfirmedReservation, error)
}

type AvailabilitySearchInput struct {
	CheckIn    string
	CheckOut   string
	Guests     int
	PropertyID *int64
}

// BookingQueries are read-only passthroughs to the upstream booking API:
// availability search for building line items and the confirmed-reservation
// list for the profile page.
type BookingQueries interface {
	SearchAvailability(ctx context.Context, in AvailabilitySearchInput) ([]AvailabilityDayView, error)
	MyReservations(ctx context.Context, authToken string) ([]ReservationView, error)
}

type bookingQueriesImpl struct {
	gateway BookingReader
}

func NewBookingQueries(gateway BookingReader) BookingQueries {
	return &bookingQueriesImpl{gateway: gateway}
}

func (q *bookingQueriesImpl) SearchAvailability(ctx context.Context, in AvailabilitySearchInput) ([]AvailabilityDayView, error) {
	days, err := q.gateway.SearchAvailability(ctx, bookingapi.AvailabilityRequest{
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		PropertyID: in.PropertyID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityLookupFailed)
	}

	views := make([]AvailabilityDayView, 0, len(days))
	if err := copier.Copy(&views, &days); err != nil {
		return nil, errs.Wrap(err, "failed to map availability response")
	}
	return views, nil
}

func (q *bookingQueriesImpl) MyReservations(ctx context.Context, authToken string) ([]ReservationView, error) {
	reservations, err := q.gateway.MyReservations(ctx, authToken)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationLookupFailed)
	}

	views := make([]ReservationView, 0, len(reservations))
	if err := copier.Copy(&views, &reservations); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation response")
	}
	return views, nil
}
