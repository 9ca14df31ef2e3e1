package request

import "strings"

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ApplyDiscountRequest) GetCode() string {
	return strings.TrimSpace(r.Code)
}
