package commands

import (
	"context"
	"time"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidLineItem = errs.New("invalid line item")
	ErrItemOutOfRange  = errs.New("line item index out of range")
)

type AddLineItemInput struct {
	PropertyID   int64
	PropertyName string
	RoomType     string
	RoomTypeID   int64
	RateID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	PaxCount     int
	Rooms        int
	Currency     string
	TotalPrice   float64
}

type GuestInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PostalCode string
	Remarks    string
}

type UpdateLineItemInput struct {
	PropertyName  *string
	Terms         *string
	Guest         *GuestInput
	ReservationID *int64
}

type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, in AddLineItemInput) error
	UpdateItem(ctx context.Context, sessionID uuid.UUID, index int, in UpdateLineItemInput) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, index int) error
	ClearSession(ctx context.Context, sessionID uuid.UUID) error
}

type cartCommandsImpl struct {
	store SessionStore
}

func NewCartCommands(store SessionStore) CartCommands {
	return &cartCommandsImpl{store: store}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, sessionID uuid.UUID, in AddLineItemInput) error {
	item, err := cart.NewLineItem(
		in.PropertyID,
		in.PropertyName,
		in.RoomType,
		in.RoomTypeID,
		in.RateID,
		in.CheckIn,
		in.CheckOut,
		in.PaxCount,
		in.Rooms,
		in.Currency,
		in.TotalPrice,
	)
	if err != nil {
		return errs.Mark(err, ErrInvalidLineItem)
	}

	return c.store.Within(ctx, sessionID, func(s *cart.Session) error {
		s.Cart().Add(item)
		return nil
	})
}

// UpdateItem merges the patch into the item at index. An out-of-bounds
// index is tolerated without error: asynchronous enrichment may arrive
// after the item was removed.
func (c *cartCommandsImpl) UpdateItem(ctx context.Context, sessionID uuid.UUID, index int, in UpdateLineItemInput) error {
	p := cart.LineItemPatch{
		PropertyName:  in.PropertyName,
		Terms:         in.Terms,
		ReservationID: in.ReservationID,
	}
	if in.Guest != nil {
		details := in.Guest.toDomain()
		p.Guest = &details
	}

	return c.store.Within(ctx, sessionID, func(s *cart.Session) error {
		s.Cart().UpdateAt(index, p)
		return nil
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID uuid.UUID, index int) error {
	return c.store.Within(ctx, sessionID, func(s *cart.Session) error {
		if !s.Cart().RemoveAt(index) {
			return ErrItemOutOfRange
		}
		return nil
	})
}

// ClearSession wipes cart, ledger and stored payment args. Shared by the
// explicit clear endpoint, logout and the liveness sweep.
func (c *cartCommandsImpl) ClearSession(ctx context.Context, sessionID uuid.UUID) error {
	return c.store.Clear(ctx, sessionID)
}

func (g GuestInput) toDomain() guest.Details {
	return guest.NewDetails(g.Name, g.Email, g.Phone, g.Address, g.PostalCode, g.Remarks)
}
