//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/internal/handler/api"
	reqdto "dozzze-checkout/internal/handler/dto/request"
	resdto "dozzze-checkout/internal/handler/dto/response"
	"dozzze-checkout/internal/pkg/errs"
	"dozzze-checkout/internal/usecase/commands"
	"dozzze-checkout/internal/usecase/queries"
	"dozzze-checkout/tests/common/builder"
	"dozzze-checkout/tests/common/httptest"
	commandsmock "dozzze-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	sessionID    uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.sessionID = uuid.New()

	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("session_id", s.sessionID)
		c.Set("auth_token", "test-token")
		c.Next()
	}

	s.router.POST("/checkout", sessionMiddleware, s.handler.Submit)
	s.router.GET("/checkout/payment", sessionMiddleware, s.handler.PaymentArgs)
	s.router.POST("/checkout/payment/return", sessionMiddleware, s.handler.PaymentReturn)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func paymentArgsView() queries.PaymentArgsView {
	return queries.PaymentArgsView{
		Endpoint:           "https://sis-t.redsys.es/sis/realizarPago",
		SignatureVersion:   "HMAC_SHA256_V1",
		MerchantParameters: "eyJEU19NRVJDSEFOVF9BTU9VTlQiOiIxMDAwMCJ9",
		Signature:          "c2lnbmF0dXJl",
	}
}

func (s *CheckoutHandlerTestSuite) TestSubmit() {
	url := "/checkout"
	reqBody := reqdto.SubmitCheckoutRequest{Guest: builder.NewGuestBuilder().BuildRequestDTO()}

	s.Run("success: returns 200 OK with payment redirect args", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.sessionID, "test-token", gomock.Any()).
			Return(&commands.SubmitResult{RedsysArgs: paymentArgsView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentRedirectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("HMAC_SHA256_V1", response.SignatureVersion)
		s.NotEmpty(response.MerchantParameters)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "submission already in progress",
				commandsError:  commands.ErrSubmissionInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Submission already in progress",
			},
			{
				name:           "cart empty",
				commandsError:  commands.ErrCartEmpty,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "upstream failure",
				commandsError:  commands.ErrSubmissionFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Reservation submission failed",
			},
			{
				name:           "payment args missing",
				commandsError:  commands.ErrPaymentArgsMissing,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "no payment arguments",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), s.sessionID, "test-token", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 with per-field detail on validation failure", func() {
		fieldErrs := guest.FieldErrors{"email": "invalid email address"}
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.sessionID, "test-token", gomock.Any()).
			Return(nil, errs.Mark(fieldErrs, commands.ErrValidationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var body struct {
			Detail map[string]string `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("invalid email address", body.Detail["email"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CheckoutHandlerTestSuite) TestPaymentArgs() {
	url := "/checkout/payment"

	s.Run("success: returns stored args", func() {
		view := paymentArgsView()
		s.mockCommands.EXPECT().PaymentArgs(gomock.Any(), s.sessionID).Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PaymentRedirectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Endpoint, response.Endpoint)
	})

	s.Run("error: 404 when no payment pending", func() {
		s.mockCommands.EXPECT().PaymentArgs(gomock.Any(), s.sessionID).
			Return(nil, commands.ErrPaymentArgsNotReady).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No payment pending")
	})
}

func (s *CheckoutHandlerTestSuite) TestPaymentReturn() {
	url := "/checkout/payment/return"

	s.Run("success: confirmed payment returns 204", func() {
		s.mockCommands.EXPECT().ConfirmPaymentReturn(gomock.Any(), s.sessionID, true).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.PaymentReturnRequest{Success: true}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: failed payment also returns 204", func() {
		s.mockCommands.EXPECT().ConfirmPaymentReturn(gomock.Any(), s.sessionID, false).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.PaymentReturnRequest{Success: false}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
