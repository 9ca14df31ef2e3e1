package bookingapi

import (
	"time"

	"dozzze-checkout/internal/domain/cart"
)

const wireDateFormat = "2006-01-02"

// BuildSubmissionRequest maps guest-stamped line items to the wire payload.
// The internal model and the server disagree on field naming (notably
// room_type); that translation lives here and nowhere else.
func BuildSubmissionRequest(items []*cart.LineItem, discountCode *string) SubmissionRequest {
	rooms := make([]SubmissionRoom, len(items))
	for i, item := range items {
		g := item.Guest()
		rooms[i] = SubmissionRoom{
			PropertyID:      item.PropertyID(),
			RoomType:        item.RoomType(),
			RoomTypeID:      item.RoomTypeID(),
			RateID:          item.RateID(),
			CheckIn:         item.CheckIn().Format(wireDateFormat),
			CheckOut:        item.CheckOut().Format(wireDateFormat),
			PaxCount:        item.PaxCount(),
			Rooms:           item.Rooms(),
			Currency:        item.Currency(),
			TotalPrice:      item.TotalPrice(),
			GuestName:       g.Name(),
			GuestEmail:      g.Email(),
			GuestPhone:      g.Phone(),
			GuestAddress:    g.Address(),
			GuestPostalCode: g.PostalCode(),
			GuestRemarks:    g.Remarks(),
		}
	}
	return SubmissionRequest{Rooms: rooms, DiscountCode: discountCode}
}

// ParseWireDate parses a calendar date from the upstream format.
func ParseWireDate(s string) (time.Time, error) {
	return time.Parse(wireDateFormat, s)
}
