package commands

import (
	"context"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/internal/pkg/errs"
	"dozzze-checkout/internal/pkg/metrics"
	"dozzze-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty            = errs.New("cart is empty")
	ErrSubmissionInProgress = cart.ErrSubmissionInProgress
	ErrValidationFailed     = errs.New("guest details validation failed")
	ErrSubmissionFailed     = errs.New("reservation submission failed")
	ErrPaymentArgsMissing   = errs.New("submission succeeded without payment redirect arguments")
	ErrPaymentArgsNotReady  = errs.New("no payment redirect arguments stored")
)

type GuestDetailsInput struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PostalCode string
	Remarks    string
}

type SubmitResult struct {
	RedsysArgs queries.PaymentArgsView
}

type CheckoutCommands interface {
	// Submit runs the full gate: validate, stamp, submit once upstream.
	Submit(ctx context.Context, sessionID uuid.UUID, authToken string, in GuestDetailsInput) (*SubmitResult, error)
	PaymentArgs(ctx context.Context, sessionID uuid.UUID) (*queries.PaymentArgsView, error)
	// ConfirmPaymentReturn handles the payment-provider return signal; only
	// a success clears the cart.
	ConfirmPaymentReturn(ctx context.Context, sessionID uuid.UUID, success bool) error
}

type checkoutCommandsImpl struct {
	store   SessionStore
	gateway BookingGateway
	metrics *metrics.Checkout
}

func NewCheckoutCommands(store SessionStore, gateway BookingGateway, m *metrics.Checkout) CheckoutCommands {
	return &checkoutCommandsImpl{store: store, gateway: gateway, metrics: m}
}

// Submit drives the gate Idle → Validating → Submitting and back to Idle.
// The upstream call is made outside the session lock so the cart stays
// editable while the submission is in flight; the gate state alone guards
// against a second concurrent submit. Every failure path preserves the
// cart and all guest-entered data.
func (c *checkoutCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID, authToken string, in GuestDetailsInput) (*SubmitResult, error) {
	details := guest.NewDetails(in.Name, in.Email, in.Phone, in.Address, in.PostalCode, in.Remarks)

	var snapshot []*cart.LineItem
	var discountCode *string

	err := c.store.Within(ctx, sessionID, func(s *cart.Session) error {
		if err := s.BeginSubmission(); err != nil {
			c.count(metrics.OutcomeInProgress)
			return err
		}
		if s.Cart().IsEmpty() {
			s.FinishSubmission()
			c.count(metrics.OutcomeCartEmpty)
			return ErrCartEmpty
		}
		if fieldErrs := details.Validate(); fieldErrs != nil {
			s.FinishSubmission()
			c.count(metrics.OutcomeValidationFailed)
			return errs.Mark(fieldErrs, ErrValidationFailed)
		}

		s.Cart().StampGuest(details)
		s.MarkSubmitting()

		snapshot = s.Cart().Items()
		if active := s.Ledger().Active(); active != nil {
			code := active.Code()
			discountCode = &code
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, submitErr := c.gateway.SubmitReservation(ctx, authToken, bookingapi.BuildSubmissionRequest(snapshot, discountCode))

	var result *SubmitResult
	finishErr := c.store.Within(ctx, sessionID, func(s *cart.Session) error {
		s.FinishSubmission()

		switch {
		case submitErr != nil:
			c.count(metrics.OutcomeUpstreamFailed)
			return errs.Mark(submitErr, ErrSubmissionFailed)
		case !resp.Success:
			c.count(metrics.OutcomeUpstreamFailed)
			return ErrSubmissionFailed
		case resp.RedsysArgs == nil:
			// Soft failure: the server booked something but gave us nothing
			// to redirect with. The step does not advance and the cart is
			// kept so the user can retry.
			c.count(metrics.OutcomePaymentArgsMissed)
			return ErrPaymentArgsMissing
		}

		s.SetPaymentArgs(cart.PaymentArgs{
			Endpoint:           resp.RedsysArgs.Endpoint,
			SignatureVersion:   resp.RedsysArgs.SignatureVersion,
			MerchantParameters: resp.RedsysArgs.MerchantParameters,
			Signature:          resp.RedsysArgs.Signature,
		})
		c.count(metrics.OutcomeSucceeded)
		result = &SubmitResult{RedsysArgs: queries.PaymentArgsView{
			Endpoint:           resp.RedsysArgs.Endpoint,
			SignatureVersion:   resp.RedsysArgs.SignatureVersion,
			MerchantParameters: resp.RedsysArgs.MerchantParameters,
			Signature:          resp.RedsysArgs.Signature,
		}}
		return nil
	})
	if finishErr != nil {
		return nil, finishErr
	}
	return result, nil
}

func (c *checkoutCommandsImpl) PaymentArgs(ctx context.Context, sessionID uuid.UUID) (*queries.PaymentArgsView, error) {
	var view *queries.PaymentArgsView
	err := c.store.View(ctx, sessionID, func(s *cart.Session) error {
		args := s.PaymentArgs()
		if args == nil {
			return ErrPaymentArgsNotReady
		}
		view = &queries.PaymentArgsView{
			Endpoint:           args.Endpoint,
			SignatureVersion:   args.SignatureVersion,
			MerchantParameters: args.MerchantParameters,
			Signature:          args.Signature,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *checkoutCommandsImpl) ConfirmPaymentReturn(ctx context.Context, sessionID uuid.UUID, success bool) error {
	if !success {
		// Failed or abandoned payment keeps the staged cart for a retry.
		return nil
	}
	if c.metrics != nil {
		c.metrics.Cleared.Inc()
	}
	return c.store.Clear(ctx, sessionID)
}

func (c *checkoutCommandsImpl) count(outcome string) {
	if c.metrics != nil {
		c.metrics.Attempts.WithLabelValues(outcome).Inc()
	}
}
