package profile

import "ProjectWafeer/pkg/response"

var (
	ErrInvalidProfile     = response.NewError(400, "invalid profile data")
	ErrObligationNotFound = response.NewError(404, "obligation not found")
	ErrInvalidObligation  = response.NewError(400, "invalid obligation data")
)
