package domain

import "strings"

// ProductType is the kind of purchasable good.
type ProductType string

const (
	TypeConsumable   ProductType = "CONSUMABLE"
	TypeEntitlement  ProductType = "ENTITLEMENT"
	TypeSubscription ProductType = "SUBSCRIPTION"
)

// EntitledState reports whether the user already owns the product.
type EntitledState string

const (
	Entitled    EntitledState = "ENTITLED"
	NotEntitled EntitledState = "NOT_ENTITLED"
)

// PurchasableState reports whether the product can currently be bought.
type PurchasableState string

const (
	Purchasable    PurchasableState = "PURCHASABLE"
	NotPurchasable PurchasableState = "NOT_PURCHASABLE"
)

// Product is an in-skill purchasable good as returned by the monetization
// service. Products are immutable and request-scoped; they are fetched fresh
// on every catalog query.
type Product struct {
	ProductID     string           `json:"productId"`
	ReferenceName string           `json:"referenceName"`
	Name          string           `json:"name"`
	Type          ProductType      `json:"type"`
	Entitled      EntitledState    `json:"entitled"`
	Purchasable   PurchasableState `json:"purchasable"`
}

// List is an ordered product collection, unique by product id, in the order
// returned by the catalog service.
type List []Product

// filter returns the subsequence of l matching keep, preserving order.
func (l List) filter(keep func(Product) bool) List {
	out := make(List, 0, len(l))
	for _, p := range l {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Consumables returns the consumable products.
func (l List) Consumables() List {
	return l.filter(func(p Product) bool { return p.Type == TypeConsumable })
}

// Entitled returns the products the user already owns.
func (l List) Entitled() List {
	return l.filter(func(p Product) bool { return p.Entitled == Entitled })
}

// Purchasable returns the products that can currently be bought.
func (l List) Purchasable() List {
	return l.filter(func(p Product) bool { return p.Purchasable == Purchasable })
}

// ByID returns the products with the given product id.
func (l List) ByID(id string) List {
	return l.filter(func(p Product) bool { return p.ProductID == id })
}

// ByReferenceName returns the products with the given reference name.
func (l List) ByReferenceName(name string) List {
	return l.filter(func(p Product) bool { return p.ReferenceName == name })
}

// Speakable joins product names into a single spoken phrase. Two or more
// names are joined with ", " and the final separator becomes " and ", so
// [A B C] reads "A, B and C".
func (l List) Speakable() string {
	if len(l) == 0 {
		return ""
	}
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Name
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
