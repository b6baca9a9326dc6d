package domain

import (
	catalog "github.com/felixgeelhaar/vocalis/internal/catalog/domain"
)

// Target is the normalized subject of a purchase, refund, or upsell: either
// one product or a product collection. The zero Target resolves to nothing.
type Target struct {
	kind   targetKind
	single catalog.Product
	many   catalog.List
}

type targetKind int

const (
	targetNone targetKind = iota
	targetSingle
	targetMany
)

// SingleTarget wraps one product.
func SingleTarget(p catalog.Product) Target {
	return Target{kind: targetSingle, single: p}
}

// ManyTarget wraps a product collection. The first element is the
// authoritative selection; the system never disambiguates further.
func ManyTarget(l catalog.List) Target {
	return Target{kind: targetMany, many: l}
}

// Resolve normalizes the target to one product. It reports false when the
// target is empty or the selected product lacks a product id; callers must
// not dispatch a directive in that case.
func (t Target) Resolve() (catalog.Product, bool) {
	var p catalog.Product
	switch t.kind {
	case targetSingle:
		p = t.single
	case targetMany:
		if len(t.many) == 0 {
			return catalog.Product{}, false
		}
		p = t.many[0]
	default:
		return catalog.Product{}, false
	}
	if p.ProductID == "" {
		return catalog.Product{}, false
	}
	return p, true
}
