package queries

import (
	"context"
	"math"

	"dozzze-checkout/internal/domain/cart"

	"github.com/google/uuid"
)

const displayDateFormat = "2006-01-02"

type SessionReader interface {
	View(ctx context.Context, sessionID uuid.UUID, fn func(*cart.Session) error) error
}

type CartQueries interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store SessionReader
}

func NewCartQueries(store SessionReader) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Get(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := q.store.View(ctx, sessionID, func(s *cart.Session) error {
		view = BuildCartView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// BuildCartView projects the session state into its read model, deriving
// the pricing quote from the raw line items on every call.
func BuildCartView(s *cart.Session) *CartView {
	items := s.Cart().Items()
	itemViews := make([]CartItemView, len(items))
	for i, item := range items {
		g := item.Guest()
		itemViews[i] = CartItemView{
			ID:            item.ID(),
			Index:         i,
			PropertyID:    item.PropertyID(),
			PropertyName:  item.PropertyName(),
			RoomType:      item.RoomType(),
			RoomTypeID:    item.RoomTypeID(),
			RateID:        item.RateID(),
			CheckIn:       item.CheckIn().Format(displayDateFormat),
			CheckOut:      item.CheckOut().Format(displayDateFormat),
			Nights:        item.Nights(),
			PaxCount:      item.PaxCount(),
			Rooms:         item.Rooms(),
			Currency:      item.Currency(),
			TotalPrice:    roundDisplay(item.TotalPrice()),
			Terms:         item.Terms(),
			ReservationID: item.ReservationID(),
			Guest: GuestView{
				Name:       g.Name(),
				Email:      g.Email(),
				Phone:      g.Phone(),
				Address:    g.Address(),
				PostalCode: g.PostalCode(),
				Remarks:    g.Remarks(),
			},
		}
	}

	quote := cart.ComputeQuote(items, s.Ledger())
	perProperty := make(map[int64]float64, len(quote.PerPropertyTotals))
	for propertyID, total := range quote.PerPropertyTotals {
		perProperty[propertyID] = roundDisplay(total)
	}

	view := &CartView{
		Items: itemViews,
		Quote: QuoteView{
			GrandTotalRaw:        roundDisplay(quote.GrandTotalRaw),
			GrandTotalDiscounted: roundDisplay(quote.GrandTotalDiscounted),
			PerPropertyTotals:    perProperty,
		},
		Gate: s.Gate().String(),
	}

	if active := s.Ledger().Active(); active != nil {
		view.Discount = &DiscountView{
			Kind:            string(active.Kind()),
			Code:            active.Code(),
			Name:            active.Name(),
			DiscountPercent: active.PercentOff(),
			RemainingAmount: active.RemainingAmount(),
		}
	}
	return view
}

// roundDisplay rounds to 2 decimal places for presentation.
func roundDisplay(v float64) float64 {
	return math.Round(v*100) / 100
}
