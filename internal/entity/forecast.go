package entity

// ForecastEvent is read-only reference data for a known upcoming high-cost
// occasion (Ramadan, Eid, National Day). Days-until is a projection from the
// reference date, recomputed on every read rather than stored.
type ForecastEvent struct {
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	EstimatedCost  float64 `json:"estimated_cost"`
	Recommendation string  `json:"recommendation"`
}
