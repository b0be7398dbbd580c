package goal

import "ProjectWafeer/pkg/response"

var (
	ErrGoalNotFound    = response.NewError(404, "goal not found")
	ErrInvalidGoal     = response.NewError(400, "invalid goal data")
	ErrInvalidDeadline = response.NewError(400, "invalid goal deadline")
)
