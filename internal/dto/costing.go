package dto

import (
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateFlakesIntakeRequest struct {
	Serial     string           `json:"serial" binding:"required,max=100"`
	FlakesType string           `json:"flakesType" binding:"required,max=255,nodigits"`
	Quantity   *decimal.Decimal `json:"quantity"`
	UnitCost   *decimal.Decimal `json:"unitCost"`
	Date       *time.Time       `json:"date"`
}

type CreateFlakesCostRequest struct {
	CostID        string           `json:"costID" binding:"required,max=100"`
	WashingCost   *decimal.Decimal `json:"washingCost"`
	TransportCost *decimal.Decimal `json:"transportCost"`
	PelletingCost *decimal.Decimal `json:"pelletingCost"`
	OtherCost     *decimal.Decimal `json:"otherCost"`
	Date          *time.Time       `json:"date"`
}

// CreatePelletsPriceRequest references its parents by flakes serial and cost code.
type CreatePelletsPriceRequest struct {
	Date         *time.Time       `json:"date"`
	FlakesSerial *string          `json:"flakesSerial"`
	CostID       *string          `json:"costID"`
	Quantity     *decimal.Decimal `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
}

type ListFlakesIntakesResponse struct {
	FlakesIntakes []domain.FlakesIntake `json:"flakesIntakes"`
}

type ListFlakesCostsResponse struct {
	FlakesCosts []domain.FlakesCost `json:"flakesCosts"`
}

type ListPelletsPricesResponse struct {
	PelletsPrices []domain.PelletsPrice `json:"pelletsPrices"`
}
