package domain

import (
	"fmt"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultLedgerAccountName is the name of the single ledger account created at startup.
const DefaultLedgerAccountName = "General Expenses"

// LedgerAccount is the single mutable balance that credits and debits act on.
type LedgerAccount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}

// LedgerHandle identifies the ledger account resolved once at startup.
type LedgerHandle struct {
	AccountID string
	Name      string
}

// MoneyPlaces is the precision balances and transaction amounts are stored at.
const MoneyPlaces = 2

// HasMoneyPrecision reports whether amount needs no more than MoneyPlaces decimals.
func HasMoneyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MoneyPlaces))
}

func checkMovement(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewFieldError("amount", "must be greater than zero")
	}
	if !HasMoneyPrecision(amount) {
		return apperrors.NewFieldError("amount", "must not have more than 2 decimal places")
	}
	return nil
}

// Credit adds amount to the balance. Amount must be positive with at most
// two decimals.
func (a *LedgerAccount) Credit(amount decimal.Decimal) error {
	if err := checkMovement(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. It fails with ErrInsufficientBalance,
// leaving the balance untouched, when amount exceeds the balance.
func (a *LedgerAccount) Debit(amount decimal.Decimal) error {
	if err := checkMovement(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s is less than %s", apperrors.ErrInsufficientBalance, a.Balance.StringFixed(2), amount.StringFixed(2))
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Apply dispatches to Credit or Debit.
func (a *LedgerAccount) Apply(txnType TransactionType, amount decimal.Decimal) error {
	switch txnType {
	case Credit:
		return a.Credit(amount)
	case Debit:
		return a.Debit(amount)
	default:
		return apperrors.NewFieldError("transactionType", fmt.Sprintf("unknown transaction type %q", txnType))
	}
}
