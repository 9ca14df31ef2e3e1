//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/internal/infra"
	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/internal/infra/cartstore"
	"dozzze-checkout/internal/usecase/commands"
	"dozzze-checkout/tests/common/builder"
	commandsmock "dozzze-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	store       *cartstore.Store
	mockGateway *commandsmock.MockBookingGateway
	cmds        commands.CheckoutCommands
	cartCmds    commands.CartCommands
	sessionID   uuid.UUID
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = cartstore.NewStore(nil, nil)
	s.mockGateway = commandsmock.NewMockBookingGateway(s.ctrl)
	s.cmds = commands.NewCheckoutCommands(s.store, s.mockGateway, nil)
	s.cartCmds = commands.NewCartCommands(s.store)
	s.sessionID = uuid.New()
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) addItem() {
	s.Require().NoError(s.cartCmds.AddItem(context.Background(), s.sessionID, builder.NewLineItemBuilder().BuildAddInput()))
}

func (s *CheckoutCommandsTestSuite) successResponse() *bookingapi.SubmissionResponse {
	return &bookingapi.SubmissionResponse{
		Success: true,
		RedsysArgs: &bookingapi.RedsysArgs{
			Endpoint:           "https://sis-t.redsys.es/sis/realizarPago",
			SignatureVersion:   "HMAC_SHA256_V1",
			MerchantParameters: "eyJEU19NRVJDSEFOVF9BTU9VTlQiOiIxMDAwMCJ9",
			Signature:          "c2lnbmF0dXJl",
		},
	}
}

func (s *CheckoutCommandsTestSuite) TestSubmit() {
	ctx := context.Background()

	s.Run("success stores payment args and returns them", func() {
		s.addItem()
		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			Return(s.successResponse(), nil).Times(1)

		result, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().NoError(err)
		s.Equal("HMAC_SHA256_V1", result.RedsysArgs.SignatureVersion)

		view, err := s.cmds.PaymentArgs(ctx, s.sessionID)
		s.Require().NoError(err)
		s.Equal("c2lnbmF0dXJl", view.Signature)

		// Gate returns to idle, cart keeps its items until payment confirms
		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.Equal(cart.GateIdle, sess.Gate())
			s.Equal(1, sess.Cart().Len())
			return nil
		}))
	})

	s.Run("guest details are stamped onto every item before submission", func() {
		s.sessionID = uuid.New()
		s.addItem()
		s.addItem()

		var captured bookingapi.SubmissionRequest
		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req bookingapi.SubmissionRequest) (*bookingapi.SubmissionResponse, error) {
				captured = req
				return s.successResponse(), nil
			}).Times(1)

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().NoError(err)

		s.Require().Len(captured.Rooms, 2)
		for _, room := range captured.Rooms {
			s.Equal("Maria Dolores", room.GuestName)
			s.Equal("maria@example.com", room.GuestEmail)
		}
	})

	s.Run("active discount code travels with the submission", func() {
		s.sessionID = uuid.New()
		s.addItem()
		s.Require().NoError(s.store.Within(ctx, s.sessionID, func(sess *cart.Session) error {
			_, err := sess.Ledger().ApplyCoupon("SUMMER10", "Summer promo", 10)
			return err
		}))

		var captured bookingapi.SubmissionRequest
		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req bookingapi.SubmissionRequest) (*bookingapi.SubmissionResponse, error) {
				captured = req
				return s.successResponse(), nil
			}).Times(1)

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().NoError(err)

		s.Require().NotNil(captured.DiscountCode)
		s.Equal("SUMMER10", *captured.DiscountCode)
	})

	s.Run("empty cart is rejected without calling upstream", func() {
		s.sessionID = uuid.New()

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().ErrorIs(err, commands.ErrCartEmpty)
	})

	s.Run("invalid guest details block submission and keep the cart", func() {
		s.sessionID = uuid.New()
		s.addItem()

		in := builder.NewGuestBuilder().WithEmail("not-an-email").BuildInput()
		_, err := s.cmds.Submit(ctx, s.sessionID, "token", in)
		s.Require().ErrorIs(err, commands.ErrValidationFailed)

		var fieldErrs guest.FieldErrors
		s.Require().ErrorAs(err, &fieldErrs)
		s.Contains(fieldErrs, "email")

		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.Equal(cart.GateIdle, sess.Gate())
			s.Equal(1, sess.Cart().Len())
			return nil
		}))
	})

	s.Run("upstream failure maps to submission failed and preserves the cart", func() {
		s.sessionID = uuid.New()
		s.addItem()

		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			Return(nil, infra.WrapRepoErr("upstream down", nil, infra.KindUpstreamFailure)).Times(1)

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().ErrorIs(err, commands.ErrSubmissionFailed)

		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.Equal(cart.GateIdle, sess.Gate())
			s.Equal(1, sess.Cart().Len())
			return nil
		}))
	})

	s.Run("missing payment args is a blocking soft failure", func() {
		s.sessionID = uuid.New()
		s.addItem()

		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			Return(&bookingapi.SubmissionResponse{Success: true}, nil).Times(1)

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().ErrorIs(err, commands.ErrPaymentArgsMissing)

		_, err = s.cmds.PaymentArgs(ctx, s.sessionID)
		s.Require().ErrorIs(err, commands.ErrPaymentArgsNotReady)

		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.Equal(1, sess.Cart().Len())
			return nil
		}))
	})

	s.Run("concurrent submit is rejected by the gate", func() {
		s.sessionID = uuid.New()
		s.addItem()

		s.Require().NoError(s.store.Within(ctx, s.sessionID, func(sess *cart.Session) error {
			return sess.BeginSubmission()
		}))

		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().ErrorIs(err, commands.ErrSubmissionInProgress)
	})
}

func (s *CheckoutCommandsTestSuite) TestConfirmPaymentReturn() {
	ctx := context.Background()

	s.Run("confirmed payment clears the session", func() {
		s.addItem()
		s.mockGateway.EXPECT().SubmitReservation(gomock.Any(), "token", gomock.Any()).
			Return(s.successResponse(), nil).Times(1)
		_, err := s.cmds.Submit(ctx, s.sessionID, "token", builder.NewGuestBuilder().BuildInput())
		s.Require().NoError(err)

		s.Require().NoError(s.cmds.ConfirmPaymentReturn(ctx, s.sessionID, true))

		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.True(sess.Cart().IsEmpty())
			s.Nil(sess.PaymentArgs())
			return nil
		}))
	})

	s.Run("failed payment keeps the cart for a retry", func() {
		s.sessionID = uuid.New()
		s.addItem()

		s.Require().NoError(s.cmds.ConfirmPaymentReturn(ctx, s.sessionID, false))

		s.Require().NoError(s.store.View(ctx, s.sessionID, func(sess *cart.Session) error {
			s.Equal(1, sess.Cart().Len())
			return nil
		}))
	})
}
