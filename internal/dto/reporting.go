package dto

import "github.com/abdulhafizu/HafeezVentures2/internal/core/domain"

type CustomerMetricsResponse struct {
	Intakes []domain.IntakeMetrics `json:"intakes"`
}

type ElectricitySummaryResponse struct {
	Summaries []domain.ElectricitySummary `json:"summaries"`
}
