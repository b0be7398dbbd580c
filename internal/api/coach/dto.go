package coach

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Degraded  bool   `json:"degraded"`
	Timestamp string `json:"timestamp"`
}

type SummaryResponse struct {
	Summary  string `json:"summary"`
	Cached   bool   `json:"cached"`
	Degraded bool   `json:"degraded"`
}
