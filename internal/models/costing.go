package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// FlakesIntake is a row of flakes_intakes.
type FlakesIntake struct {
	FlakesIntakeID string              `db:"flakes_intake_id"`
	Serial         string              `db:"serial"`
	FlakesType     string              `db:"flakes_type"`
	Quantity       decimal.NullDecimal `db:"quantity"`
	UnitCost       decimal.NullDecimal `db:"unit_cost"`
	TotalCost1     decimal.NullDecimal `db:"total_cost1"`
	IntakeDate     time.Time           `db:"intake_date"`
	AuditFields
}

// FlakesCost is a row of flakes_costs.
type FlakesCost struct {
	CostID        string              `db:"cost_id"`
	WashingCost   decimal.NullDecimal `db:"washing_cost"`
	TransportCost decimal.NullDecimal `db:"transport_cost"`
	PelletingCost decimal.NullDecimal `db:"pelleting_cost"`
	OtherCost     decimal.NullDecimal `db:"other_cost"`
	TotalCost2    decimal.NullDecimal `db:"total_cost2"`
	CostDate      time.Time           `db:"cost_date"`
	AuditFields
}

// PelletsPrice is a row of pellets_prices.
type PelletsPrice struct {
	PriceID      string              `db:"price_id"`
	PriceDate    time.Time           `db:"price_date"`
	FlakesSerial sql.NullString      `db:"flakes_serial"`
	CostID       sql.NullString      `db:"cost_id"`
	Quantity     decimal.NullDecimal `db:"quantity"`
	UnitPrice    decimal.NullDecimal `db:"unit_price"`
	Price        decimal.NullDecimal `db:"price"`
	Profit       decimal.NullDecimal `db:"profit"`
	AuditFields
}
