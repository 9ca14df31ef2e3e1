//go:build unit || e2e

package builder

import (
	"time"

	domcart "dozzze-checkout/internal/domain/cart"
	reqdto "dozzze-checkout/internal/handler/dto/request"
	"dozzze-checkout/internal/usecase/commands"
)

type LineItemBuilder struct {
	PropertyID   int64
	PropertyName string
	RoomType     string
	RoomTypeID   int64
	RateID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	PaxCount     int
	Rooms        int
	Currency     string
	TotalPrice   float64
}

func NewLineItemBuilder() *LineItemBuilder {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &LineItemBuilder{
		PropertyID:   1,
		PropertyName: "Seaside Hotel",
		RoomType:     "Double Room",
		RoomTypeID:   11,
		RateID:       101,
		CheckIn:      checkIn,
		CheckOut:     checkIn.AddDate(0, 0, 2),
		PaxCount:     2,
		Rooms:        1,
		Currency:     "EUR",
		TotalPrice:   100.0,
	}
}

// Build methods
func (b *LineItemBuilder) BuildDomain() (*domcart.LineItem, error) {
	return domcart.NewLineItem(
		b.PropertyID,
		b.PropertyName,
		b.RoomType,
		b.RoomTypeID,
		b.RateID,
		b.CheckIn,
		b.CheckOut,
		b.PaxCount,
		b.Rooms,
		b.Currency,
		b.TotalPrice,
	)
}

func (b *LineItemBuilder) MustBuildDomain() *domcart.LineItem {
	item, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return item
}

func (b *LineItemBuilder) BuildAddInput() commands.AddLineItemInput {
	return commands.AddLineItemInput{
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		RoomType:     b.RoomType,
		RoomTypeID:   b.RoomTypeID,
		RateID:       b.RateID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		PaxCount:     b.PaxCount,
		Rooms:        b.Rooms,
		Currency:     b.Currency,
		TotalPrice:   b.TotalPrice,
	}
}

func (b *LineItemBuilder) BuildAddRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		RoomType:     b.RoomType,
		RoomTypeID:   b.RoomTypeID,
		RateID:       b.RateID,
		CheckIn:      b.CheckIn.Format("2006-01-02"),
		CheckOut:     b.CheckOut.Format("2006-01-02"),
		PaxCount:     b.PaxCount,
		Rooms:        b.Rooms,
		Currency:     b.Currency,
		TotalPrice:   b.TotalPrice,
	}
}

// Fluent builder methods
func (b *LineItemBuilder) WithPropertyID(id int64) *LineItemBuilder {
	b.PropertyID = id
	return b
}

func (b *LineItemBuilder) WithPropertyName(name string) *LineItemBuilder {
	b.PropertyName = name
	return b
}

func (b *LineItemBuilder) WithRoomType(roomType string) *LineItemBuilder {
	b.RoomType = roomType
	return b
}

func (b *LineItemBuilder) WithRateID(id int64) *LineItemBuilder {
	b.RateID = id
	return b
}

func (b *LineItemBuilder) WithStay(checkIn, checkOut time.Time) *LineItemBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *LineItemBuilder) WithPaxCount(pax int) *LineItemBuilder {
	b.PaxCount = pax
	return b
}

func (b *LineItemBuilder) WithRooms(rooms int) *LineItemBuilder {
	b.Rooms = rooms
	return b
}

func (b *LineItemBuilder) WithCurrency(currency string) *LineItemBuilder {
	b.Currency = currency
	return b
}

func (b *LineItemBuilder) WithTotalPrice(price float64) *LineItemBuilder {
	b.TotalPrice = price
	return b
}
