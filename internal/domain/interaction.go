package domain

import "time"

// InteractionType represents an action a user took on a piece of content.
type InteractionType string

const (
	InteractionTypeView     InteractionType = "view"
	InteractionTypeLike     InteractionType = "like"
	InteractionTypePurchase InteractionType = "purchase"
	InteractionTypeTip      InteractionType = "tip"
	InteractionTypeShare    InteractionType = "share"
	InteractionTypeBookmark InteractionType = "bookmark"
)

// Weight returns how strongly the interaction signals interest. Unknown types weigh 1.
func (t InteractionType) Weight() float64 {
	switch t {
	case InteractionTypeView:
		return 1
	case InteractionTypeLike:
		return 3
	case InteractionTypePurchase:
		return 10
	case InteractionTypeTip:
		return 8
	case InteractionTypeShare:
		return 5
	case InteractionTypeBookmark:
		return 4
	default:
		return 1
	}
}

// Interaction is an immutable record of a user action against a content item.
// Content attributes are denormalised at record time.
type Interaction struct {
	ID             string          `json:"id"`
	UserAddress    string          `json:"user_address"`
	ContentID      string          `json:"content_id"`
	ContentType    ContentType     `json:"content_type"`
	ContentPrice   float64         `json:"content_price"`
	CreatorAddress string          `json:"creator_address"`
	Type           InteractionType `json:"type"`
	Amount         float64         `json:"amount,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// NewInteraction builds an interaction for content, copying the attributes the
// feature extractor reads.
func NewInteraction(
	userAddress string, content Content, interactionType InteractionType, amount float64, now time.Time,
) Interaction {
	return Interaction{
		UserAddress:    userAddress,
		ContentID:      content.ID,
		ContentType:    content.Type,
		ContentPrice:   content.Price,
		CreatorAddress: content.CreatorAddress,
		Type:           interactionType,
		Amount:         amount,
		Timestamp:      now,
	}
}

// HasPurchased reports whether any interaction is a purchase of the given content.
func HasPurchased(interactions []Interaction, contentID string) bool {
	for _, i := range interactions {
		if i.ContentID == contentID && i.Type == InteractionTypePurchase {
			return true
		}
	}
	return false
}
