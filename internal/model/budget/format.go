package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func (s Status) String() string {
	return fmt.Sprintf("Total expense: %s, Budget: %s, Remaining: %s",
		s.TotalExpense.StringFixed(2),
		s.Budget.StringFixed(2),
		s.Remaining.StringFixed(2))
}

func FormatGoal(goal decimal.Decimal) string {
	return fmt.Sprintf("Daily spending goal: %s", goal.StringFixed(2))
}
