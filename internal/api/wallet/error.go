package wallet

import "ProjectWafeer/pkg/response"

var (
	ErrCardNotFound      = response.NewError(404, "card not found")
	ErrInvalidCard       = response.NewError(400, "invalid card data")
	ErrInvalidAmount     = response.NewError(400, "invalid transfer amount")
	ErrInsufficientFunds = response.NewError(422, "insufficient funds in selected account")
)
