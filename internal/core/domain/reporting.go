package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationLoss is the material-loss breakdown for one recycling operation.
type OperationLoss struct {
	Operation      RecyclingOperation `json:"operation"`
	Intake         *MaterialIntake    `json:"intake"`
	MaterialLost   decimal.Decimal    `json:"materialLost"`
	PercentageLost decimal.Decimal    `json:"percentageLost"`
}

// IntakeMetrics summarises how much of one intake batch has been consumed.
type IntakeMetrics struct {
	IntakeID       string          `json:"intakeID"`
	Serial         string          `json:"serial"`
	CustomerID     string          `json:"customerID"`
	CustomerName   string          `json:"customerName"`
	Date           time.Time       `json:"date"`
	Quantity       decimal.Decimal `json:"quantity"`
	MaterialUsed   decimal.Decimal `json:"materialUsed"`
	Bangori        decimal.Decimal `json:"bangori"`
	MaterialLost   decimal.Decimal `json:"materialLost"`
	PercentageLost decimal.Decimal `json:"percentageLost"`
}

// ElectricitySummary aggregates the operations billed against one meter reading.
type ElectricitySummary struct {
	Reading           MeterReading    `json:"reading"`
	OperationCount    int             `json:"operationCount"`
	MaterialUsed      decimal.Decimal `json:"materialUsed"`
	Bangori           decimal.Decimal `json:"bangori"`
	TotalStandardCost decimal.Decimal `json:"totalStandardCost"`
	Variance          decimal.Decimal `json:"variance"`
}

// LedgerIntegrity compares the stored ledger balance against a full replay.
type LedgerIntegrity struct {
	AccountID       string          `json:"accountID"`
	StoredBalance   decimal.Decimal `json:"storedBalance"`
	ReplayedBalance decimal.Decimal `json:"replayedBalance"`
	Consistent      bool            `json:"consistent"`
}
