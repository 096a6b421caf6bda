package services

import (
	"context"
	"sort"
	"strings"

	"restaurant-pos/models"
)

// Catalog is a read-only case-insensitive product lookup built from the
// product collection.
type Catalog struct {
	byName map[string]models.Product
	names  []string
}

func NewCatalog(products []models.Product) Catalog {
	byName := make(map[string]models.Product, len(products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			continue
		}
		if _, ok := byName[key]; !ok {
			names = append(names, key)
		}
		byName[key] = p
	}
	sort.Strings(names)
	return Catalog{byName: byName, names: names}
}

// Lookup matches a name case-insensitively against the catalog.
func (c Catalog) Lookup(name string) (models.Product, bool) {
	p, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// LookupLoose matches exactly first, then by substring containment in
// either direction. Candidates are scanned in sorted name order so the
// result is deterministic.
func (c Catalog) LookupLoose(name string) (models.Product, bool) {
	if p, ok := c.Lookup(name); ok {
		return p, true
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.Product{}, false
	}
	for _, key := range c.names {
		if strings.Contains(key, needle) || strings.Contains(needle, key) {
			return c.byName[key], true
		}
	}
	return models.Product{}, false
}

// OrderItem is a catalog-priced line ready for finalization.
type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   float64 `json:"qty"`
}

// RejectedLine is a typed line that matched nothing, even after correction.
type RejectedLine struct {
	Raw    string `json:"raw"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type MatchResult struct {
	Items   []OrderItem    `json:"items"`
	Invalid []RejectedLine `json:"invalid"`
	Total   float64        `json:"total"`
}

// ResolveItems matches parsed lines against the catalog. Names that miss are
// sent to the corrector in one bounded-concurrency batch, then re-matched
// exactly and by substring containment. Per-line order is preserved
// regardless of correction completion order because corrections are keyed
// by the original input. Lines that still match nothing are excluded from
// the finalize-able set.
func ResolveItems(ctx context.Context, catalog Catalog, corrector Corrector, lines []ParsedLine) MatchResult {
	result := MatchResult{Items: []OrderItem{}, Invalid: []RejectedLine{}}

	matched := make(map[int]models.Product, len(lines))
	var unknown []string
	seen := map[string]bool{}
	for i, line := range lines {
		if p, ok := catalog.Lookup(line.Name); ok {
			matched[i] = p
			continue
		}
		if !seen[line.Name] {
			seen[line.Name] = true
			unknown = append(unknown, line.Name)
		}
	}

	var corrections map[string]string
	if corrector != nil && len(unknown) > 0 {
		corrections = BatchCorrect(ctx, corrector, unknown)
	}

	for i, line := range lines {
		p, ok := matched[i]
		if !ok {
			if corrected := corrections[line.Name]; corrected != "" {
				p, ok = catalog.LookupLoose(corrected)
			}
		}
		if !ok {
			result.Invalid = append(result.Invalid, RejectedLine{
				Raw:    line.Raw,
				Name:   line.Name,
				Reason: "no matching product",
			})
			continue
		}
		result.Items = append(result.Items, OrderItem{Name: p.Name, Price: p.Price, Qty: line.Qty})
		result.Total += p.Price * line.Qty
	}

	return result
}
