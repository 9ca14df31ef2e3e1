package cartstore

import (
	"encoding/json"
	"time"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/domain/guest"

	"github.com/google/uuid"
)

// Allow-list of persisted session slices. The submission gate state is
// deliberately absent: an in-flight submission never survives a reload.
const (
	SliceCart     = "cart"
	SliceDiscount = "discount"
	SlicePayment  = "payment"
)

var persistedSlices = []string{SliceCart, SliceDiscount, SlicePayment}

type lineItemSnapshot struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    int64     `json:"property_id"`
	PropertyName  string    `json:"property_name"`
	RoomType      string    `json:"room_type"`
	RoomTypeID    int64     `json:"room_type_id"`
	RateID        int64     `json:"rate_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	PaxCount      int       `json:"pax_count"`
	Rooms         int       `json:"rooms"`
	Currency      string    `json:"currency"`
	TotalPrice    float64   `json:"total_price"`
	Terms         string    `json:"terms_and_conditions,omitempty"`
	Guest         guestSnap `json:"guest"`
	ReservationID *int64    `json:"reservation_id,omitempty"`
}

type guestSnap struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

type discountSnapshot struct {
	Kind            cart.DiscountKind `json:"kind"`
	Code            string            `json:"code"`
	Name            string            `json:"name,omitempty"`
	PercentOff      float64           `json:"discount_percent,omitempty"`
	RemainingAmount float64           `json:"remaining_amount,omitempty"`
}

type paymentSnapshot struct {
	Endpoint           string `json:"endpoint"`
	SignatureVersion   string `json:"ds_signature_version"`
	MerchantParameters string `json:"ds_merchant_parameters"`
	Signature          string `json:"ds_signature"`
}

func encodeSession(session *cart.Session) (map[string][]byte, error) {
	items := session.Cart().Items()
	itemSnaps := make([]lineItemSnapshot, len(items))
	for i, item := range items {
		g := item.Guest()
		itemSnaps[i] = lineItemSnapshot{
			ID:            item.ID(),
			PropertyID:    item.PropertyID(),
			PropertyName:  item.PropertyName(),
			RoomType:      item.RoomType(),
			RoomTypeID:    item.RoomTypeID(),
			RateID:        item.RateID(),
			CheckIn:       item.CheckIn(),
			CheckOut:      item.CheckOut(),
			PaxCount:      item.PaxCount(),
			Rooms:         item.Rooms(),
			Currency:      item.Currency(),
			TotalPrice:    item.TotalPrice(),
			Terms:         item.Terms(),
			ReservationID: item.ReservationID(),
			Guest: guestSnap{
				Name:       g.Name(),
				Email:      g.Email(),
				Phone:      g.Phone(),
				Address:    g.Address(),
				PostalCode: g.PostalCode(),
				Remarks:    g.Remarks(),
			},
		}
	}

	cartPayload, err := json.Marshal(itemSnaps)
	if err != nil {
		return nil, err
	}

	slices := map[string][]byte{SliceCart: cartPayload}

	if active := session.Ledger().Active(); active != nil {
		payload, err := json.Marshal(discountSnapshot{
			Kind:            active.Kind(),
			Code:            active.Code(),
			Name:            active.Name(),
			PercentOff:      active.PercentOff(),
			RemainingAmount: active.RemainingAmount(),
		})
		if err != nil {
			return nil, err
		}
		slices[SliceDiscount] = payload
	}

	if args := session.PaymentArgs(); args != nil {
		payload, err := json.Marshal(paymentSnapshot{
			Endpoint:           args.Endpoint,
			SignatureVersion:   args.SignatureVersion,
			MerchantParameters: args.MerchantParameters,
			Signature:          args.Signature,
		})
		if err != nil {
			return nil, err
		}
		slices[SlicePayment] = payload
	}

	return slices, nil
}

func decodeSession(slices map[string][]byte) (*cart.Session, error) {
	var items []*cart.LineItem
	if payload, ok := slices[SliceCart]; ok {
		var snaps []lineItemSnapshot
		if err := json.Unmarshal(payload, &snaps); err != nil {
			return nil, err
		}
		items = make([]*cart.LineItem, len(snaps))
		for i, snap := range snaps {
			items[i] = cart.ReconstructLineItem(
				snap.ID,
				snap.PropertyID,
				snap.PropertyName,
				snap.RoomType,
				snap.RoomTypeID,
				snap.RateID,
				snap.CheckIn,
				snap.CheckOut,
				snap.PaxCount,
				snap.Rooms,
				snap.Currency,
				snap.TotalPrice,
				snap.Terms,
				guest.NewDetails(snap.Guest.Name, snap.Guest.Email, snap.Guest.Phone, snap.Guest.Address, snap.Guest.PostalCode, snap.Guest.Remarks),
				snap.ReservationID,
			)
		}
	}

	var active *cart.Discount
	if payload, ok := slices[SliceDiscount]; ok {
		var snap discountSnapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			return nil, err
		}
		d := cart.ReconstructDiscount(snap.Kind, snap.Code, snap.Name, snap.PercentOff, snap.RemainingAmount)
		active = &d
	}

	var payment *cart.PaymentArgs
	if payload, ok := slices[SlicePayment]; ok {
		var snap paymentSnapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			return nil, err
		}
		payment = &cart.PaymentArgs{
			Endpoint:           snap.Endpoint,
			SignatureVersion:   snap.SignatureVersion,
			MerchantParameters: snap.MerchantParameters,
			Signature:          snap.Signature,
		}
	}

	return cart.ReconstructSession(items, active, payment), nil
}
