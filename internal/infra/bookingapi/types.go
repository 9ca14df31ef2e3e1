package bookingapi

// Wire types for the upstream booking API. Field names follow the server's
// snake_case contract; the mapping from the internal model happens in this
// package only.

type AvailabilityRequest struct {
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	PropertyID *int64 `json:"property_id,omitempty"`
}

type RatePrice struct {
	Occupancy int     `json:"occupancy"`
	Price     float64 `json:"price"`
}

type Rate struct {
	RateID int64       `json:"rate_id"`
	Prices []RatePrice `json:"prices"`
}

type AvailabilityDay struct {
	Date         string `json:"date"`
	RoomType     string `json:"room_type"`
	RoomTypeID   int64  `json:"room_type_id"`
	Availability int    `json:"availability"`
	Rates        []Rate `json:"rates"`
	PropertyID   int64  `json:"property_id"`
}

// VoucherValidation covers both response shapes of the validate endpoint:
// coupons carry discount_percent, vouchers carry remaining_amount.
type VoucherValidation struct {
	Type            string  `json:"type"`
	Applicable      bool    `json:"applicable"`
	Name            string  `json:"name,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	RemainingAmount float64 `json:"remaining_amount,omitempty"`
}

const (
	VoucherTypeCoupon  = "coupon"
	VoucherTypeVoucher = "voucher"
)

type SubmissionRoom struct {
	PropertyID      int64   `json:"property_id"`
	RoomType        string  `json:"room_type"`
	RoomTypeID      int64   `json:"room_type_id"`
	RateID          int64   `json:"rate_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	PaxCount        int     `json:"pax_count"`
	Rooms           int     `json:"rooms"`
	Currency        string  `json:"currency"`
	TotalPrice      float64 `json:"total_price"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	GuestAddress    string  `json:"guest_address,omitempty"`
	GuestPostalCode string  `json:"guest_postal_code,omitempty"`
	GuestRemarks    string  `json:"guest_remarks,omitempty"`
}

type SubmissionRequest struct {
	Rooms        []SubmissionRoom `json:"rooms"`
	DiscountCode *string          `json:"discount_code,omitempty"`
}

type RedsysArgs struct {
	Endpoint           string `json:"endpoint"`
	SignatureVersion   string `json:"Ds_SignatureVersion"`
	MerchantParameters string `json:"Ds_MerchantParameters"`
	Signature          string `json:"Ds_Signature"`
}

type SubmissionResponse struct {
	Success    bool        `json:"success"`
	RedsysArgs *RedsysArgs `json:"redsys_args,omitempty"`
}

type RoomReservation struct {
	RoomType string  `json:"room_type"`
	CheckIn  string  `json:"check_in"`
	CheckOut string  `json:"check_out"`
	PaxCount int     `json:"pax_count"`
	Price    float64 `json:"price"`
}

type ConfirmedReservation struct {
	ID               int64             `json:"id"`
	PropertyID       int64             `json:"property_id"`
	PropertyName     string            `json:"property_name"`
	Status           string            `json:"status"`
	Currency         string            `json:"currency"`
	TotalPrice       float64           `json:"total_price"`
	RoomReservations []RoomReservation `json:"room_reservations"`
}
