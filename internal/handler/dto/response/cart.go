package response

import (
	"dozzze-checkout/internal/usecase/commands"
	"dozzze-checkout/internal/usecase/queries"
)

type CartResponse struct {
	Items    []queries.CartItemView `json:"items"`
	Quote    queries.QuoteView      `json:"quote"`
	Discount *queries.DiscountView  `json:"discount,omitempty"`
	Gate     string                 `json:"gate"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	return &CartResponse{
		Items:    view.Items,
		Quote:    view.Quote,
		Discount: view.Discount,
		Gate:     view.Gate,
	}
}

type ApplyDiscountResponse struct {
	Kind       string  `json:"kind"`
	Code       string  `json:"code"`
	Superseded *string `json:"superseded,omitempty"`
}

func FromApplyDiscountResult(result *commands.ApplyDiscountResult) *ApplyDiscountResponse {
	return &ApplyDiscountResponse{
		Kind:       result.Kind,
		Code:       result.Code,
		Superseded: result.Superseded,
	}
}
