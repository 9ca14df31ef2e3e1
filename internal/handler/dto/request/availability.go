package request

import (
	"dozzze-checkout/internal/usecase/queries"
)

type AvailabilitySearchRequest struct {
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Guests     int    `json:"guests" binding:"required,min=1"`
	PropertyID *int64 `json:"property_id,omitempty"`
}

func (r AvailabilitySearchRequest) ToInput() queries.AvailabilitySearchInput {
	return queries.AvailabilitySearchInput{
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
		PropertyID: r.PropertyID,
	}
}
