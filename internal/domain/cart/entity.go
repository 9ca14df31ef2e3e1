package cart

import (
	"dozzze-checkout/internal/domain/guest"
)

// Cart holds the ordered sequence of staged line items for one session.
// It is not safe for concurrent use; the session store serializes access.
type Cart struct {
	items []*LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends the item to the end of the sequence. The same property/rate
// may appear more than once; "add another room" flows rely on that.
func (c *Cart) Add(item *LineItem) {
	c.items = append(c.items, item)
}

// UpdateAt merges the patch into the item at index. An out-of-bounds index
// is silently ignored: asynchronous terms enrichment may race a concurrent
// deletion and the later arrival simply has nothing left to update.
func (c *Cart) UpdateAt(index int, p LineItemPatch) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items[index].applyPatch(p)
	return true
}

// RemoveAt removes the item at index, shifting subsequent items down by
// one. Indices held by callers are invalidated.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// ReplaceAll swaps the whole sequence. Items are cloned on the way in so
// the caller cannot mutate cart state through retained references.
func (c *Cart) ReplaceAll(items []*LineItem) {
	next := make([]*LineItem, len(items))
	for i, item := range items {
		next[i] = item.clone()
	}
	c.items = next
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a defensive copy of the sequence in display order.
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.clone()
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// StampGuest replicates the shared guest details onto every line item, the
// wholesale-replace step that precedes submission.
func (c *Cart) StampGuest(d guest.Details) {
	stamped := c.Items()
	for _, item := range stamped {
		item.guest = d
	}
	c.ReplaceAll(stamped)
}
