package coach

import "ProjectWafeer/pkg/response"

var (
	ErrEmptyMessage = response.NewError(400, "message is required")
)

// Static fallbacks for when the reasoning service is down or unreachable.
// Provider failures never surface as errors to the session.
const (
	FallbackSummary = "Could not generate analysis at this time."
	FallbackReply   = "I'm having a little trouble connecting to my financial brain right now. Try again in a moment."
)
