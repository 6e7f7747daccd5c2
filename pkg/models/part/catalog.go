package part

import "sort"

// Catalog is an immutable lookup of parts by category and id.
type Catalog struct {
	order map[Category][]string
	parts map[Category]map[string]Part
}

// NewCatalog builds a catalog; list order is kept for presentation ties.
func NewCatalog(parts []Part) *Catalog {
	c := &Catalog{
		order: make(map[Category][]string),
		parts: make(map[Category]map[string]Part),
	}
	for _, p := range parts {
		if c.parts[p.Category] == nil {
			c.parts[p.Category] = make(map[string]Part)
		}
		if _, dup := c.parts[p.Category][p.ID]; !dup {
			c.order[p.Category] = append(c.order[p.Category], p.ID)
		}
		c.parts[p.Category][p.ID] = p
	}
	return c
}

// Get returns the part with id in category.
func (c *Catalog) Get(cat Category, id string) (Part, bool) {
	p, ok := c.parts[cat][id]
	return p, ok
}

// Price returns the price of id at tier. The second value is false when the
// part is unknown or not purchasable at that tier.
func (c *Catalog) Price(cat Category, id string, tier int) (int, bool) {
	p, ok := c.Get(cat, id)
	if !ok {
		return 0, false
	}
	return p.Price(tier)
}

// IDs returns the category's ids in definition order.
func (c *Catalog) IDs(cat Category) []string {
	return append([]string(nil), c.order[cat]...)
}

// Ordered returns ids for presentation at tier: purchasable parts by
// ascending price, then the unavailable ones. Ties keep definition order.
func (c *Catalog) Ordered(cat Category, tier int) []string {
	ids := c.IDs(cat)
	sort.SliceStable(ids, func(i, j int) bool {
		pi, oki := c.Price(cat, ids[i], tier)
		pj, okj := c.Price(cat, ids[j], tier)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return pi < pj
	})
	return ids
}

// Tier derives the price tier from progression.
func Tier(completedJumps, threshold int) int {
	if completedJumps >= threshold {
		return 1
	}
	return 0
}
