package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// ReportingService computes derived views over the user's transaction
// history. It never mutates state, so repeated calls with no intervening
// writes return identical results.
type ReportingService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewReportingService creates a new ReportingService.
func NewReportingService(store *storage.Storage) *ReportingService {
	return &ReportingService{storage: store, now: time.Now}
}

// bucketLayout maps the requested period to the cashflow bucket key layout.
// Week and month series use day buckets; quarter and year use calendar-month
// buckets. Coarser periods intentionally keep month buckets; the period is a
// display hint for consumers, not a distinct bucket width.
func bucketLayout(period Period) string {
	switch period {
	case PeriodWeek, PeriodMonth:
		return "2006-01-02"
	default:
		return "2006-01"
	}
}

// Cashflow buckets the user's transactions by date at the period's
// granularity and sums income and expense per bucket. The series is sorted
// ascending by bucket key; no transactions yield an empty series.
func (s *ReportingService) Cashflow(ctx context.Context, userID uuid.UUID, period Period, dateRange *DateRange) ([]CashflowBucket, error) {
	rows, err := s.storage.Transactions.List(ctx, userID, rangeFilter(dateRange))
	if err != nil {
		return nil, err
	}

	layout := bucketLayout(period)
	buckets := make(map[string]*CashflowBucket)
	for _, row := range rows {
		key := row.Date.UTC().Format(layout)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &CashflowBucket{Date: key}
			buckets[key] = bucket
		}
		if row.Type == transactions.TypeIncome {
			bucket.Income = bucket.Income.Add(row.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(row.Amount)
		}
	}

	series := make([]CashflowBucket, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Balance = bucket.Income.Sub(bucket.Expense)
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series, nil
}

// CategoryDistribution groups the user's transactions by category, resolves
// category names, and sums amounts. An empty transactionType matches both
// directions; a period restricts to the current calendar month, quarter, or
// year. Sorted by total descending, name ascending on ties.
func (s *ReportingService) CategoryDistribution(ctx context.Context, userID uuid.UUID, transactionType transactions.Type, period Period) ([]CategoryTotal, error) {
	filter := &transactions.TransactionFilter{}
	if transactionType != "" {
		filter.Type = &transactionType
	}
	if start, ok := periodStart(period, s.now().UTC()); ok {
		filter.From = &start
	}

	rows, err := s.storage.Transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	categoryRows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categoryRows))
	for _, category := range categoryRows {
		names[category.ID] = category.Name
	}

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range rows {
		// Transactions whose category no longer resolves are dropped,
		// mirroring an inner join on the category table.
		if _, ok := names[row.CategoryID]; !ok {
			continue
		}
		totals[row.CategoryID] = totals[row.CategoryID].Add(row.Amount)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for categoryID, total := range totals {
		result = append(result, CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: names[categoryID],
			Total:        total,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	return result, nil
}

// Summary computes total income, expense, and balance over the range, plus
// the subtotals restricted to tax-relevant transactions.
func (s *ReportingService) Summary(ctx context.Context, userID uuid.UUID, dateRange *DateRange) (Summary, error) {
	rows, err := s.storage.Transactions.List(ctx, userID, rangeFilter(dateRange))
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, row := range rows {
		if row.Type == transactions.TypeIncome {
			summary.Income = summary.Income.Add(row.Amount)
			if row.TaxRelevant {
				summary.TaxRelevantIncome = summary.TaxRelevantIncome.Add(row.Amount)
			}
		} else {
			summary.Expense = summary.Expense.Add(row.Amount)
			if row.TaxRelevant {
				summary.TaxRelevantExpense = summary.TaxRelevantExpense.Add(row.Amount)
			}
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)

	return summary, nil
}

// periodStart returns the beginning of the current calendar month, quarter,
// or year. Other periods apply no lower bound.
func periodStart(period Period, now time.Time) (time.Time, bool) {
	switch period {
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC), true
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func rangeFilter(dateRange *DateRange) *transactions.TransactionFilter {
	if dateRange == nil {
		return nil
	}
	return &transactions.TransactionFilter{
		From: dateRange.From,
		To:   dateRange.To,
	}
}
