// internal/models/purchase.go
package models

type PurchaseType string

const (
	PurchaseIndividual PurchaseType = "individual"
	PurchaseTeam       PurchaseType = "team"
	PurchaseCorporate  PurchaseType = "corporate"
	PurchaseEnterprise PurchaseType = "enterprise"
)

// Valid reports whether t is one of the known purchase types.
func (t PurchaseType) Valid() bool {
	switch t {
	case PurchaseIndividual, PurchaseTeam, PurchaseCorporate, PurchaseEnterprise:
		return true
	}
	return false
}

type PurchaseRequest struct {
	UserCount    int          `json:"userCount"`
	PurchaseType PurchaseType `json:"purchaseType,omitempty"`
}

type PriceCalculation struct {
	TotalPrice      int64        `json:"totalPrice"`
	PricePerPerson  int64        `json:"pricePerPerson"`
	Packs           int          `json:"packs"`
	DiscountApplied float64      `json:"discountApplied"`
	PurchaseType    PurchaseType `json:"purchaseType"`
}
