package record

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64
	Name string
}

// Expense is a stored expense row. Date is an ISO 8601 calendar date.
type Expense struct {
	ID          int64
	Amount      decimal.Decimal
	CategoryID  int64
	Date        string
	Description string
}

// ExpenseView is an expense joined with its category name.
type ExpenseView struct {
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

type SavingGoal struct {
	ID     int64
	Name   string
	Amount decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

type MonthTotal struct {
	Month  string
	Amount decimal.Decimal
}
