package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Period selects the reporting timeframe. For cashflow it picks the bucket
// granularity; for category distribution it restricts the window to the
// current calendar period.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// DateRange restricts a report to transactions dated within [From, To].
// Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// CashflowBucket is one point of the cashflow series. Date is the bucket key:
// a day ("2006-01-02") or a calendar month ("2006-01").
type CashflowBucket struct {
	Date    string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryTotal is one row of the category distribution.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// Summary is the overall financial summary. All fields are zero, never
// absent, when the user has no matching transactions.
type Summary struct {
	Income             decimal.Decimal
	Expense            decimal.Decimal
	Balance            decimal.Decimal
	TaxRelevantIncome  decimal.Decimal
	TaxRelevantExpense decimal.Decimal
}
