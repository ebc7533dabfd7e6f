package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateCatalogItem = errors.New("duplicate catalog item")
	ErrInvalidMultiplier    = errors.New("multiplier must be > 0 and <= 1")
)

// CatalogItem is one supplier price-list entry. UnitPrice is the supplier
// list price; LaborHours is the reference installation time for one unit.
type CatalogItem struct {
	Category   string
	Name       string
	UnitPrice  decimal.Decimal
	LaborHours decimal.Decimal
}

// Catalog is the immutable supplier price list, keyed by category and item
// name. Iteration and search results preserve table insertion order.
type Catalog struct {
	categories []string
	byCategory map[string][]CatalogItem
	index      map[string]map[string]int
}

func NewCatalog(items []CatalogItem) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[string][]CatalogItem),
		index:      make(map[string]map[string]int),
	}
	for _, it := range items {
		names, ok := c.index[it.Category]
		if !ok {
			names = make(map[string]int)
			c.index[it.Category] = names
			c.categories = append(c.categories, it.Category)
		}
		if _, exists := names[it.Name]; exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateCatalogItem, it.Category, it.Name)
		}
		names[it.Name] = len(c.byCategory[it.Category])
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	return c, nil
}

// Categories returns category keys in table order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// ItemsByCategory returns the items of one category in table order.
func (c *Catalog) ItemsByCategory(category string) []CatalogItem {
	items := c.byCategory[category]
	out := make([]CatalogItem, len(items))
	copy(out, items)
	return out
}

// Item resolves a (category, name) pair. The second return reports whether
// the pair exists.
func (c *Catalog) Item(category, name string) (CatalogItem, bool) {
	names, ok := c.index[category]
	if !ok {
		return CatalogItem{}, false
	}
	pos, ok := names[name]
	if !ok {
		return CatalogItem{}, false
	}
	return c.byCategory[category][pos], true
}

// Search returns every item whose name contains query as a case-insensitive
// substring, in table order. An empty category searches all categories; an
// empty query matches everything.
func (c *Catalog) Search(query, category string) []CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))

	categories := c.categories
	if category != "" {
		categories = []string{category}
	}

	matches := make([]CatalogItem, 0)
	for _, cat := range categories {
		for _, it := range c.byCategory[cat] {
			if q == "" || strings.Contains(strings.ToLower(it.Name), q) {
				matches = append(matches, it)
			}
		}
	}
	return matches
}

// MultiplierTable maps a category to the fraction of list price charged as
// the contractor's cost basis. Categories absent from the table resolve to
// the default multiplier instead of failing, because ad-hoc custom items may
// carry categories the table has never seen.
type MultiplierTable struct {
	fallback   decimal.Decimal
	byCategory map[string]decimal.Decimal
}

func NewMultiplierTable(fallback decimal.Decimal, byCategory map[string]decimal.Decimal) (MultiplierTable, error) {
	if err := validateMultiplier("default", fallback); err != nil {
		return MultiplierTable{}, err
	}
	table := make(map[string]decimal.Decimal, len(byCategory))
	for category, m := range byCategory {
		if err := validateMultiplier(category, m); err != nil {
			return MultiplierTable{}, err
		}
		table[category] = m
	}
	return MultiplierTable{fallback: fallback, byCategory: table}, nil
}

func validateMultiplier(category string, m decimal.Decimal) error {
	one := decimal.NewFromInt(1)
	if !m.IsPositive() || m.GreaterThan(one) {
		return fmt.Errorf("%w: category %q has %s", ErrInvalidMultiplier, category, m)
	}
	return nil
}

// Resolve returns the multiplier for a category, falling back to the default
// for unknown categories.
func (t MultiplierTable) Resolve(category string) decimal.Decimal {
	if m, ok := t.byCategory[category]; ok {
		return m
	}
	return t.fallback
}

// Categories returns the explicitly configured category keys.
func (t MultiplierTable) Categories() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.byCategory))
	for k, v := range t.byCategory {
		out[k] = v
	}
	return out
}

// Default returns the fallback multiplier applied to unknown categories.
func (t MultiplierTable) Default() decimal.Decimal {
	return t.fallback
}
