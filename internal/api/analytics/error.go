package analytics

import "ProjectWafeer/pkg/response"

var (
	ErrInvalidWindow     = response.NewError(400, "invalid window size")
	ErrInvalidCalculator = response.NewError(400, "invalid calculator input")
)
