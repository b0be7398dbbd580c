package transaction

import "ProjectWafeer/pkg/response"

var (
	ErrTransactionNotFound = response.NewError(404, "transaction not found")
	ErrInvalidAmount       = response.NewError(400, "invalid transaction amount")
	ErrInvalidMerchant     = response.NewError(400, "merchant is required")
	ErrInvalidCategory     = response.NewError(400, "invalid category")
	ErrInvalidDate         = response.NewError(400, "invalid transaction date")
	ErrInvalidPeriod       = response.NewError(400, "invalid period")
)
