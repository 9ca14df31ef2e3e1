package queries

import (
	"github.com/google/uuid"
)

// Read models (DTO for read side)

type GuestView struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

type CartItemView struct {
	ID            uuid.UUID `json:"id"`
	Index         int       `json:"index"`
	PropertyID    int64     `json:"property_id"`
	PropertyName  string    `json:"property_name"`
	RoomType      string    `json:"room_type"`
	RoomTypeID    int64     `json:"room_type_id"`
	RateID        int64     `json:"rate_id"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Nights        int       `json:"nights"`
	PaxCount      int       `json:"pax_count"`
	Rooms         int       `json:"rooms"`
	Currency      string    `json:"currency"`
	TotalPrice    float64   `json:"total_price"`
	Terms         string    `json:"terms_and_conditions,omitempty"`
	Guest         GuestView `json:"guest"`
	ReservationID *int64    `json:"reservation_id,omitempty"`
}

// QuoteView carries display-rounded totals. Rounding happens only here at
// the read boundary; the domain keeps raw values.
type QuoteView struct {
	GrandTotalRaw        float64           `json:"grand_total_raw"`
	GrandTotalDiscounted float64           `json:"grand_total_discounted"`
	PerPropertyTotals    map[int64]float64 `json:"per_property_totals"`
}

type DiscountView struct {
	Kind            string  `json:"kind"`
	Code            string  `json:"code"`
	Name            string  `json:"name,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	RemainingAmount float64 `json:"remaining_amount,omitempty"`
}

type CartView struct {
	Items    []CartItemView `json:"items"`
	Quote    QuoteView      `json:"quote"`
	Discount *DiscountView  `json:"discount,omitempty"`
	Gate     string         `json:"gate"`
}

type PaymentArgsView struct {
	Endpoint           string `json:"endpoint"`
	SignatureVersion   string `json:"Ds_SignatureVersion"`
	MerchantParameters string `json:"Ds_MerchantParameters"`
	Signature          string `json:"Ds_Signature"`
}

type RatePriceView struct {
	Occupancy int     `json:"occupancy"`
	Price     float64 `json:"price"`
}

type RateView struct {
	RateID int64           `json:"rate_id"`
	Prices []RatePriceView `json:"prices"`
}

type AvailabilityDayView struct {
	Date         string     `json:"date"`
	RoomType     string     `json:"room_type"`
	RoomTypeID   int64      `json:"room_type_id"`
	Availability int        `json:"availability"`
	Rates        []RateView `json:"rates"`
	PropertyID   int64      `json:"property_id"`
}

type RoomReservationView struct {
	RoomType string  `json:"room_type"`
	CheckIn  string  `json:"check_in"`
	CheckOut string  `json:"check_out"`
	PaxCount int     `json:"pax_count"`
	Price    float64 `json:"price"`
}

type ReservationView struct {
	ID               int64                 `json:"id"`
	PropertyID       int64                 `json:"property_id"`
	PropertyName     string                `json:"property_name"`
	Status           string                `json:"status"`
	Currency         string                `json:"currency"`
	TotalPrice       float64               `json:"total_price"`
	RoomReservations []RoomReservationView `json:"room_reservations"`
}
