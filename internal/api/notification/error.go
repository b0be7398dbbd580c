package notification

import "ProjectWafeer/pkg/response"

var (
	ErrNotificationNotFound = response.NewError(404, "notification not found")
)
