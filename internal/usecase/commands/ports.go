package commands

import (
	"context"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/infra/bookingapi"

	"github.com/google/uuid"
)

// SessionStore is the single owner of mutable session state. Within
// serializes all mutations per session; Clear is the shared entry point
// wired to logout, token loss and confirmed payment returns.
type SessionStore interface {
	Within(ctx context.Context, sessionID uuid.UUID, fn func(*cart.Session) error) error
	View(ctx context.Context, sessionID uuid.UUID, fn func(*cart.Session) error) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// BookingGateway is the write-side slice of the upstream booking API.
type BookingGateway interface {
	ValidateVoucher(ctx context.Context, code string) (*bookingapi.VoucherValidation, error)
	SubmitReservation(ctx context.Context, authToken string, req bookingapi.SubmissionRequest) (*bookingapi.SubmissionResponse, error)
}
