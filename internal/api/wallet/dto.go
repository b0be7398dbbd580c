package wallet

type CreateCardRequest struct {
	Type    string  `json:"type" validate:"required,oneof=Visa Mastercard Mada"`
	Last4   string  `json:"last4" validate:"required,len=4,numeric"`
	Expiry  string  `json:"expiry" validate:"required"`
	Holder  string  `json:"holder" validate:"required"`
	Color   string  `json:"color"`
	Balance float64 `json:"balance" validate:"gte=0"`
}

type UpdateCardRequest struct {
	Type   string `json:"type" validate:"omitempty,oneof=Visa Mastercard Mada"`
	Last4  string `json:"last4" validate:"omitempty,len=4,numeric"`
	Expiry string `json:"expiry"`
	Holder string `json:"holder"`
	Color  string `json:"color"`
}

type TransferRequest struct {
	SourceID string  `json:"source_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

type CardResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Last4     string  `json:"last4"`
	Expiry    string  `json:"expiry"`
	Holder    string  `json:"holder"`
	Color     string  `json:"color"`
	Balance   float64 `json:"balance"`
	IsDefault bool    `json:"is_default"`
}

type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// RemoveCardResponse carries the surviving default card so the client can
// reselect its funding source after a deletion.
type RemoveCardResponse struct {
	Cards     []CardResponse `json:"cards"`
	DefaultID string         `json:"default_id"`
}

type TransferResponse struct {
	ReceiptID    string  `json:"receipt_id"`
	CardID       string  `json:"card_id"`
	Amount       float64 `json:"amount"`
	BalanceAfter float64 `json:"balance_after"`
	CreatedAt    string  `json:"created_at"`
}

type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	MonthlyCost   float64                `json:"monthly_cost"`
}

type SubscriptionResponse struct {
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}
