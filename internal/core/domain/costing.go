package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlakesIntake is the first stage of the flakes to pellets costing chain.
type FlakesIntake struct {
	FlakesIntakeID string           `json:"flakesIntakeID"`
	Serial         string           `json:"serial"`
	FlakesType     string           `json:"flakesType"`
	Quantity       *decimal.Decimal `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unitCost"`
	TotalCost1     *decimal.Decimal `json:"totalCost1"`
	Date           time.Time        `json:"date"`
	AuditFields
}

// FlakesCost is the processing cost stage. CostID is the operator-assigned code.
type FlakesCost struct {
	CostID        string           `json:"costID"`
	WashingCost   *decimal.Decimal `json:"washingCost"`
	TransportCost *decimal.Decimal `json:"transportCost"`
	PelletingCost *decimal.Decimal `json:"pelletingCost"`
	OtherCost     *decimal.Decimal `json:"otherCost"`
	TotalCost2    *decimal.Decimal `json:"totalCost2"`
	Date          time.Time        `json:"date"`
	AuditFields
}

// PelletsPrice is the sale stage. Profit is set only when both parents resolved.
type PelletsPrice struct {
	PriceID      string           `json:"priceID"`
	Date         time.Time        `json:"date"`
	FlakesSerial *string          `json:"flakesSerial"`
	CostID       *string          `json:"costID"`
	Quantity     *decimal.Decimal `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Price        *decimal.Decimal `json:"price"`
	Profit       *decimal.Decimal `json:"profit"`
	AuditFields
}
