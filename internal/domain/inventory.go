package domain

import (
	"fmt"
	"sort"
)

// TableClass groups the tables that seat up to Capacity guests. Table order
// is the allocation preference.
type TableClass struct {
	Capacity int      `json:"capacity"`
	Tables   []string `json:"tables"`
}

// Inventory is the read-only table layout of the venue.
type Inventory struct {
	classes []TableClass
	byTable map[string]int
}

func NewInventory(classes []TableClass) (*Inventory, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: inventory has no table classes", ErrValidation)
	}

	inv := &Inventory{
		classes: make([]TableClass, 0, len(classes)),
		byTable: make(map[string]int),
	}
	seenCapacity := make(map[int]bool, len(classes))

	for _, c := range classes {
		if c.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrValidation, c.Capacity)
		}
		if len(c.Tables) == 0 {
			return nil, fmt.Errorf("%w: capacity class %d has no tables", ErrValidation, c.Capacity)
		}
		if seenCapacity[c.Capacity] {
			return nil, fmt.Errorf("%w: capacity class %d declared twice", ErrValidation, c.Capacity)
		}
		seenCapacity[c.Capacity] = true

		tables := make([]string, len(c.Tables))
		copy(tables, c.Tables)
		for _, t := range tables {
			if t == "" {
				return nil, fmt.Errorf("%w: empty table id in class %d", ErrValidation, c.Capacity)
			}
			if _, dup := inv.byTable[t]; dup {
				return nil, fmt.Errorf("%w: table %q listed twice", ErrValidation, t)
			}
			inv.byTable[t] = c.Capacity
		}
		inv.classes = append(inv.classes, TableClass{Capacity: c.Capacity, Tables: tables})
	}

	sort.Slice(inv.classes, func(i, j int) bool {
		return inv.classes[i].Capacity < inv.classes[j].Capacity
	})

	return inv, nil
}

// AnonymousTables synthesizes ids for a class declared only by a table count.
func AnonymousTables(capacity, count int) []string {
	tables := make([]string, 0, count)
	for n := 1; n <= count; n++ {
		tables = append(tables, fmt.Sprintf("%d-%d", capacity, n))
	}
	return tables
}

// ClassFor returns the smallest class that seats partySize guests.
func (i *Inventory) ClassFor(partySize int) (TableClass, error) {
	if partySize <= 0 {
		return TableClass{}, fmt.Errorf("%w: party size must be positive", ErrValidation)
	}
	for _, c := range i.classes {
		if c.Capacity >= partySize {
			return c, nil
		}
	}
	return TableClass{}, ErrInvalidPartySize
}

// CapacityOf reports the class capacity a table belongs to.
func (i *Inventory) CapacityOf(tableRef string) (int, bool) {
	c, ok := i.byTable[tableRef]
	return c, ok
}

func (i *Inventory) MaxCapacity() int {
	return i.classes[len(i.classes)-1].Capacity
}

// Classes returns a copy of the classes ordered by capacity.
func (i *Inventory) Classes() []TableClass {
	out := make([]TableClass, len(i.classes))
	for n, c := range i.classes {
		tables := make([]string, len(c.Tables))
		copy(tables, c.Tables)
		out[n] = TableClass{Capacity: c.Capacity, Tables: tables}
	}
	return out
}
