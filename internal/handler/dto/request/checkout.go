package request

import (
	"dozzze-checkout/internal/usecase/commands"
)

type SubmitCheckoutRequest struct {
	Guest GuestRequest `json:"guest" binding:"required"`
}

func (r SubmitCheckoutRequest) ToInput() commands.GuestDetailsInput {
	return commands.GuestDetailsInput{
		Name:       r.Guest.Name,
		Email:      r.Guest.Email,
		Phone:      r.Guest.Phone,
		Address:    r.Guest.Address,
		PostalCode: r.Guest.PostalCode,
		Remarks:    r.Guest.Remarks,
	}
}

// PaymentReturnRequest carries the payment-provider return signal relayed
// by the front end after the redirect completes.
type PaymentReturnRequest struct {
	Success bool `json:"success"`
}
