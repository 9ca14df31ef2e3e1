package cart

// Quote is the derived pricing of a cart at one point in time. It is
// recomputed from the raw line items on every call; nothing is accumulated
// incrementally, so repeated aggregation cannot drift.
type Quote struct {
	GrandTotalRaw        float64
	GrandTotalDiscounted float64
	// PerPropertyTotals groups line items by property; subtotals are
	// always pre-discount, the discount applies at the grand total only.
	PerPropertyTotals map[int64]float64
}

// ComputeQuote derives the totals for the given line items and ledger.
// An empty sequence yields zero totals and an empty grouping regardless of
// any active discount.
func ComputeQuote(items []*LineItem, ledger *Ledger) Quote {
	q := Quote{PerPropertyTotals: make(map[int64]float64, 2)}

	for _, item := range items {
		q.GrandTotalRaw += item.TotalPrice()
		q.PerPropertyTotals[item.PropertyID()] += item.TotalPrice()
	}

	q.GrandTotalDiscounted = q.GrandTotalRaw
	if ledger != nil {
		if active := ledger.Active(); active != nil {
			q.GrandTotalDiscounted = active.Apply(q.GrandTotalRaw)
		}
	}
	return q
}
