package game

import "github.com/Garsondee/Skeleton-Glade/internal/tuning"

// DefaultInventorySlots is the bag size when tuning leaves it unset.
const DefaultInventorySlots = 12

// HotbarSlots is how many leading inventory slots the hotbar mirrors.
const HotbarSlots = 6

const healthPotionID = "health_potion"

// Item is one stack held in an inventory slot.
type Item struct {
	ID       string
	Name     string
	Quantity int
	MaxStack int
}

// Inventory is a fixed array of optional stacks. Out-of-range and empty
// slots are reported with ok=false rather than an error.
type Inventory struct {
	slots []*Item
}

func NewInventory(size int) *Inventory {
	if size <= 0 {
		size = DefaultInventorySlots
	}
	return &Inventory{slots: make([]*Item, size)}
}

func (inv *Inventory) Size() int { return len(inv.slots) }

// AddItem tops up existing stacks of the same id before taking the first
// empty slot. It returns false when the item could not be stored in full;
// anything that did fit stays stored.
func (inv *Inventory) AddItem(it Item) bool {
	if it.Quantity <= 0 {
		return false
	}
	if it.MaxStack <= 0 {
		it.MaxStack = 1
	}
	for _, s := range inv.slots {
		if it.Quantity == 0 {
			return true
		}
		if s == nil || s.ID != it.ID || s.Quantity >= s.MaxStack {
			continue
		}
		n := min(s.MaxStack-s.Quantity, it.Quantity)
		s.Quantity += n
		it.Quantity -= n
	}
	for i, s := range inv.slots {
		if it.Quantity == 0 {
			return true
		}
		if s != nil {
			continue
		}
		n := min(it.MaxStack, it.Quantity)
		stack := it
		stack.Quantity = n
		inv.slots[i] = &stack
		it.Quantity -= n
	}
	return it.Quantity == 0
}

// RemoveItem empties slot and returns what it held.
func (inv *Inventory) RemoveItem(slot int) (Item, bool) {
	it, ok := inv.Item(slot)
	if !ok {
		return Item{}, false
	}
	inv.slots[slot] = nil
	return it, true
}

func (inv *Inventory) Item(slot int) (Item, bool) {
	if slot < 0 || slot >= len(inv.slots) || inv.slots[slot] == nil {
		return Item{}, false
	}
	return *inv.slots[slot], true
}

// Items copies the slots; empty slots are nil.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.slots))
	for i, s := range inv.slots {
		if s != nil {
			c := *s
			out[i] = &c
		}
	}
	return out
}

func (inv *Inventory) IsFull() bool {
	for _, s := range inv.slots {
		if s == nil {
			return false
		}
	}
	return true
}

// Clear drops every stack.
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = nil
	}
}

// Fill replaces the contents with the configured starting stacks.
func (inv *Inventory) Fill(items []tuning.Item) {
	inv.Clear()
	for _, it := range items {
		inv.AddItem(Item{ID: it.ID, Name: it.Name, Quantity: it.Quantity, MaxStack: it.MaxStack})
	}
}

// consume takes one unit from slot, clearing it when the stack runs out.
func (inv *Inventory) consume(slot int) {
	s := inv.slots[slot]
	s.Quantity--
	if s.Quantity <= 0 {
		inv.slots[slot] = nil
	}
}
