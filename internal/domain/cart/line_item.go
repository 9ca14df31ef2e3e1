package cart

import (
	"errors"
	"strings"
	"time"

	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay     = errors.New("check-out must be after check-in")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidPax      = errors.New("pax count must be at least 1")
	ErrInvalidRooms    = errors.New("room count must be at least 1")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// LineItem is one staged room/rate selection for a date range at a property.
// The id is assigned locally at Add time; the ordered sequence inside Cart
// carries display order only.
type LineItem struct {
	id            uuid.UUID
	propertyID    int64
	propertyName  string
	roomType      string
	roomTypeID    int64
	rateID        int64
	checkIn       time.Time
	checkOut      time.Time
	paxCount      int
	rooms         int
	currency      string
	totalPrice    float64
	terms         string
	guest         guest.Details
	reservationID *int64
}

func NewLineItem(
	propertyID int64,
	propertyName string,
	roomType string,
	roomTypeID int64,
	rateID int64,
	checkIn, checkOut time.Time,
	paxCount, rooms int,
	currency string,
	totalPrice float64,
) (*LineItem, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidStay
	}
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if paxCount < 1 {
		return nil, ErrInvalidPax
	}
	if rooms < 1 {
		return nil, ErrInvalidRooms
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &LineItem{
		id:           uuid.New(),
		propertyID:   propertyID,
		propertyName: propertyName,
		roomType:     roomType,
		roomTypeID:   roomTypeID,
		rateID:       rateID,
		checkIn:      checkIn,
		checkOut:     checkOut,
		paxCount:     paxCount,
		rooms:        rooms,
		currency:     currency,
		totalPrice:   totalPrice,
	}, nil
}

// ReconstructLineItem rebuilds an item from a persisted snapshot, bypassing
// creation-time validation.
func ReconstructLineItem(
	id uuid.UUID,
	propertyID int64,
	propertyName string,
	roomType string,
	roomTypeID int64,
	rateID int64,
	checkIn, checkOut time.Time,
	paxCount, rooms int,
	currency string,
	totalPrice float64,
	terms string,
	guestDetails guest.Details,
	reservationID *int64,
) *LineItem {
	return &LineItem{
		id:            id,
		propertyID:    propertyID,
		propertyName:  propertyName,
		roomType:      roomType,
		roomTypeID:    roomTypeID,
		rateID:        rateID,
		checkIn:       checkIn,
		checkOut:      checkOut,
		paxCount:      paxCount,
		rooms:         rooms,
		currency:      currency,
		totalPrice:    totalPrice,
		terms:         terms,
		guest:         guestDetails,
		reservationID: reservationID,
	}
}

// LineItemPatch carries the fields that may be merged into an existing item
// after it was added: display enrichment, asynchronous terms delivery, guest
// stamping and the server-assigned reservation id.
type LineItemPatch struct {
	PropertyName  *string
	Terms         *string
	Guest         *guest.Details
	ReservationID *int64
}

func (li *LineItem) applyPatch(p LineItemPatch) {
	li.propertyName = patch.Coalesce(p.PropertyName, li.propertyName)
	li.terms = patch.Coalesce(p.Terms, li.terms)
	if p.Guest != nil {
		li.guest = *p.Guest
	}
	if p.ReservationID != nil {
		id := *p.ReservationID
		li.reservationID = &id
	}
}

func (li *LineItem) ID() uuid.UUID         { return li.id }
func (li *LineItem) PropertyID() int64     { return li.propertyID }
func (li *LineItem) PropertyName() string  { return li.propertyName }
func (li *LineItem) RoomType() string      { return li.roomType }
func (li *LineItem) RoomTypeID() int64     { return li.roomTypeID }
func (li *LineItem) RateID() int64         { return li.rateID }
func (li *LineItem) CheckIn() time.Time    { return li.checkIn }
func (li *LineItem) CheckOut() time.Time   { return li.checkOut }
func (li *LineItem) PaxCount() int         { return li.paxCount }
func (li *LineItem) Rooms() int            { return li.rooms }
func (li *LineItem) Currency() string      { return li.currency }
func (li *LineItem) TotalPrice() float64   { return li.totalPrice }
func (li *LineItem) Terms() string         { return li.terms }
func (li *LineItem) Guest() guest.Details  { return li.guest }
func (li *LineItem) ReservationID() *int64 { return li.reservationID }

func (li *LineItem) Nights() int {
	return int(li.checkOut.Sub(li.checkIn).Hours() / 24)
}

// clone returns a copy so ReplaceAll callers cannot keep a live reference
// into the cart.
func (li *LineItem) clone() *LineItem {
	cp := *li
	if li.reservationID != nil {
		id := *li.reservationID
		cp.reservationID = &id
	}
	return &cp
}
