package request

import (
	"strings"
	"time"

	"dozzze-checkout/internal/usecase/commands"
)

const dateFormat = "2006-01-02"

type AddCartItemRequest struct {
	PropertyID   int64   `json:"property_id" binding:"required"`
	PropertyName string  `json:"property_name"`
	RoomType     string  `json:"room_type" binding:"required"`
	RoomTypeID   int64   `json:"room_type_id" binding:"required"`
	RateID       int64   `json:"rate_id" binding:"required"`
	CheckIn      string  `json:"check_in" binding:"required"`
	CheckOut     string  `json:"check_out" binding:"required"`
	PaxCount     int     `json:"pax_count" binding:"required,min=1"`
	Rooms        int     `json:"rooms" binding:"required,min=1"`
	Currency     string  `json:"currency" binding:"required"`
	TotalPrice   float64 `json:"total_price"`
}

func (r AddCartItemRequest) ToInput() (commands.AddLineItemInput, error) {
	checkIn, err := time.Parse(dateFormat, r.CheckIn)
	if err != nil {
		return commands.AddLineItemInput{}, err
	}
	checkOut, err := time.Parse(dateFormat, r.CheckOut)
	if err != nil {
		return commands.AddLineItemInput{}, err
	}

	return commands.AddLineItemInput{
		PropertyID:   r.PropertyID,
		PropertyName: strings.TrimSpace(r.PropertyName),
		RoomType:     strings.TrimSpace(r.RoomType),
		RoomTypeID:   r.RoomTypeID,
		RateID:       r.RateID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		PaxCount:     r.PaxCount,
		Rooms:        r.Rooms,
		Currency:     r.Currency,
		TotalPrice:   r.TotalPrice,
	}, nil
}

type GuestRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Remarks    string `json:"remarks"`
}

type UpdateCartItemRequest struct {
	PropertyName  *string       `json:"property_name,omitempty"`
	Terms         *string       `json:"terms_and_conditions,omitempty"`
	Guest         *GuestRequest `json:"guest,omitempty"`
	ReservationID *int64        `json:"reservation_id,omitempty"`
}

func (r UpdateCartItemRequest) ToInput() commands.UpdateLineItemInput {
	in := commands.UpdateLineItemInput{
		PropertyName:  r.PropertyName,
		Terms:         r.Terms,
		ReservationID: r.ReservationID,
	}
	if r.Guest != nil {
		in.Guest = &commands.GuestInput{
			Name:       r.Guest.Name,
			Email:      r.Guest.Email,
			Phone:      r.Guest.Phone,
			Address:    r.Guest.Address,
			PostalCode: r.Guest.PostalCode,
			Remarks:    r.Guest.Remarks,
		}
	}
	return in
}
