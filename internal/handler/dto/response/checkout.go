package response

import (
	"dozzze-checkout/internal/usecase/queries"
)

// PaymentRedirectResponse carries the arguments the front end posts to the
// payment gateway. Field names follow the gateway's wire contract.
type PaymentRedirectResponse struct {
	Endpoint           string `json:"endpoint"`
	SignatureVersion   string `json:"Ds_SignatureVersion"`
	MerchantParameters string `json:"Ds_MerchantParameters"`
	Signature          string `json:"Ds_Signature"`
}

func FromPaymentArgsView(view *queries.PaymentArgsView) *PaymentRedirectResponse {
	return &PaymentRedirectResponse{
		Endpoint:           view.Endpoint,
		SignatureVersion:   view.SignatureVersion,
		MerchantParameters: view.MerchantParameters,
		Signature:          view.Signature,
	}
}
