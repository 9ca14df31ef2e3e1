package cart

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPercent  = errors.New("percentage discount must be between 0 and 100")
	ErrNegativeVoucher = errors.New("voucher amount cannot be negative")
	ErrEmptyCode       = errors.New("discount code cannot be empty")
)

type DiscountKind string

const (
	KindCoupon  DiscountKind = "coupon"
	KindVoucher DiscountKind = "voucher"
)

// Discount is one validated code. Exactly one numeric field is meaningful,
// selected by the kind.
type Discount struct {
	kind            DiscountKind
	code            string
	name            string
	percentOff      float64
	remainingAmount float64
}

func (d Discount) Kind() DiscountKind       { return d.kind }
func (d Discount) Code() string             { return d.code }
func (d Discount) Name() string             { return d.name }
func (d Discount) PercentOff() float64      { return d.percentOff }
func (d Discount) RemainingAmount() float64 { return d.remainingAmount }

// Apply deducts the discount from the given total. Voucher amounts floor at
// zero; the net total is never negative.
func (d Discount) Apply(total float64) float64 {
	switch d.kind {
	case KindCoupon:
		return total * (100.0 - d.percentOff) / 100.0
	case KindVoucher:
		remaining := total - d.remainingAmount
		if remaining < 0 {
			return 0
		}
		return remaining
	default:
		return total
	}
}

// Ledger holds at most one active discount. Applying a new code of either
// kind supersedes the previous one without error.
type Ledger struct {
	active *Discount
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// ApplyCoupon activates a percentage code. Returns the superseded code, if
// any, so callers can surface the replacement.
func (l *Ledger) ApplyCoupon(code, name string, percent float64) (*string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidPercent
	}
	superseded := l.activeCode()
	l.active = &Discount{kind: KindCoupon, code: code, name: name, percentOff: percent}
	return superseded, nil
}

// ApplyVoucher activates a fixed-amount code.
func (l *Ledger) ApplyVoucher(code string, amount float64) (*string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if amount < 0 {
		return nil, ErrNegativeVoucher
	}
	superseded := l.activeCode()
	l.active = &Discount{kind: KindVoucher, code: code, remainingAmount: amount}
	return superseded, nil
}

// ReconstructDiscount rebuilds a discount from a persisted snapshot.
func ReconstructDiscount(kind DiscountKind, code, name string, percentOff, remainingAmount float64) Discount {
	return Discount{
		kind:            kind,
		code:            code,
		name:            name,
		percentOff:      percentOff,
		remainingAmount: remainingAmount,
	}
}

func (l *Ledger) Clear() {
	l.active = nil
}

func (l *Ledger) Active() *Discount {
	if l.active == nil {
		return nil
	}
	cp := *l.active
	return &cp
}

func (l *Ledger) activeCode() *string {
	if l.active == nil {
		return nil
	}
	code := l.active.code
	return &code
}
