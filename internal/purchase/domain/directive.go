// Package domain models monetization directives: one-shot instructions
// appended to a response that tell the host platform to start a purchase,
// refund, or upsell connection.
package domain

// TypeConnectionsSendRequest is the fixed directive type for monetization
// connections.
const TypeConnectionsSendRequest = "Connections.SendRequest"

// CorrelationToken routes the eventual connection result back to the skill.
const CorrelationToken = "vocalisMonetizationToken"

// Name selects the monetization action.
type Name string

const (
	NameBuy    Name = "Buy"
	NameCancel Name = "Cancel"
	NameUpsell Name = "Upsell"
)

// InSkillProduct identifies the product a directive acts on.
type InSkillProduct struct {
	ProductID string `json:"productId"`
}

// Payload is the directive payload.
type Payload struct {
	InSkillProduct InSkillProduct `json:"InSkillProduct"`
	UpsellMessage  string         `json:"upsellMessage,omitempty"`
}

// Directive is the fixed-shape monetization directive. A directive always
// carries a non-empty product id; callers resolve the product before
// construction and fail fast otherwise.
type Directive struct {
	Type    string  `json:"type"`
	Name    Name    `json:"name"`
	Payload Payload `json:"payload"`
	Token   string  `json:"token"`
}

// NewBuy builds a purchase directive for the product.
func NewBuy(productID string) Directive {
	return Directive{
		Type:    TypeConnectionsSendRequest,
		Name:    NameBuy,
		Payload: Payload{InSkillProduct: InSkillProduct{ProductID: productID}},
		Token:   CorrelationToken,
	}
}

// NewCancel builds a refund directive for the product.
func NewCancel(productID string) Directive {
	return Directive{
		Type:    TypeConnectionsSendRequest,
		Name:    NameCancel,
		Payload: Payload{InSkillProduct: InSkillProduct{ProductID: productID}},
		Token:   CorrelationToken,
	}
}

// NewUpsell builds an upsell directive for the product with the given
// upsell message.
func NewUpsell(productID, message string) Directive {
	return Directive{
		Type: TypeConnectionsSendRequest,
		Name: NameUpsell,
		Payload: Payload{
			InSkillProduct: InSkillProduct{ProductID: productID},
			UpsellMessage:  message,
		},
		Token: CorrelationToken,
	}
}
