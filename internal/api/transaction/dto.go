package transaction

type CreateTransactionRequest struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Merchant       string  `json:"merchant" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	IsSubscription bool    `json:"is_subscription"`
}

type TransactionResponse struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Amount         float64 `json:"amount"`
	Merchant       string  `json:"merchant"`
	Category       string  `json:"category"`
	IsSubscription bool    `json:"is_subscription"`
	CreatedAt      string  `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        float64               `json:"total"`
	Period       string                `json:"period"`
}
