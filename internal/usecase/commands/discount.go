package commands

import (
	"context"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/infra"
	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrDiscountInvalid: the code could not be validated (unknown code or
	// lookup failure). ErrDiscountNotApplicable: the code exists but the
	// voucher service rejected it for this use.
	ErrDiscountInvalid       = errs.New("discount code invalid")
	ErrDiscountNotApplicable = errs.New("discount code not applicable")
)

// ApplyDiscountResult reports what was activated and which code, if any,
// was silently superseded. Supersession is not an error; at most one
// discount is ever active.
type ApplyDiscountResult struct {
	Kind       string
	Code       string
	Superseded *string
}

type DiscountCommands interface {
	Apply(ctx context.Context, sessionID uuid.UUID, code string) (*ApplyDiscountResult, error)
	Remove(ctx context.Context, sessionID uuid.UUID) error
}

type discountCommandsImpl struct {
	store   SessionStore
	gateway BookingGateway
}

func NewDiscountCommands(store SessionStore, gateway BookingGateway) DiscountCommands {
	return &discountCommandsImpl{store: store, gateway: gateway}
}

func (d *discountCommandsImpl) Apply(ctx context.Context, sessionID uuid.UUID, code string) (*ApplyDiscountResult, error) {
	validation, err := d.gateway.ValidateVoucher(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountInvalid
		}
		return nil, errs.Mark(err, ErrDiscountInvalid)
	}
	if !validation.Applicable {
		return nil, ErrDiscountNotApplicable
	}

	result := &ApplyDiscountResult{Code: code}
	err = d.store.Within(ctx, sessionID, func(s *cart.Session) error {
		var superseded *string
		var applyErr error
		switch validation.Type {
		case bookingapi.VoucherTypeCoupon:
			superseded, applyErr = s.Ledger().ApplyCoupon(code, validation.Name, validation.DiscountPercent)
		case bookingapi.VoucherTypeVoucher:
			superseded, applyErr = s.Ledger().ApplyVoucher(code, validation.RemainingAmount)
		default:
			return ErrDiscountInvalid
		}
		if applyErr != nil {
			return errs.Mark(applyErr, ErrDiscountInvalid)
		}
		result.Kind = validation.Type
		result.Superseded = superseded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (d *discountCommandsImpl) Remove(ctx context.Context, sessionID uuid.UUID) error {
	return d.store.Within(ctx, sessionID, func(s *cart.Session) error {
		s.Ledger().Clear()
		return nil
	})
}
