// Package report exposes the read-only reporting endpoints. Nothing here
// mutates state; each handler forwards the caller's identity and filters to
// the reporting service and reshapes the result for the wire.
package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/identity"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// reportingService is the interface for the reporting operations.
type reportingService interface {
	Cashflow(ctx context.Context, userID uuid.UUID, period service.Period, dateRange *service.DateRange) ([]service.CashflowBucket, error)
	CategoryDistribution(ctx context.Context, userID uuid.UUID, transactionType transactions.Type, period service.Period) ([]service.CategoryTotal, error)
	Summary(ctx context.Context, userID uuid.UUID, dateRange *service.DateRange) (service.Summary, error)
}

// CashflowBucket is one point of the cashflow series on the wire.
type CashflowBucket struct {
	Date    string `json:"date" doc:"Bucket key: a day (YYYY-MM-DD) or calendar month (YYYY-MM)"`
	Income  string `json:"income" doc:"Decimal income total for the bucket"`
	Expense string `json:"expense" doc:"Decimal expense total for the bucket"`
	Balance string `json:"balance" doc:"income - expense for the bucket"`
}

// CashflowInput is the Huma input for the cashflow report.
type CashflowInput struct {
	Period string `query:"period" enum:"week,month,quarter,year" doc:"Bucket granularity hint: week/month use day buckets, quarter/year calendar months"`
	From   string `query:"from" doc:"Optional RFC3339 or YYYY-MM-DD lower bound"`
	To     string `query:"to" doc:"Optional RFC3339 or YYYY-MM-DD upper bound"`
}

// CashflowOutput is the Huma output for the cashflow report.
type CashflowOutput struct {
	Body []CashflowBucket
}

// CashflowHandler handles GET /reports/cashflow.
type CashflowHandler struct {
	Reporting reportingService
}

// NewCashflowHandler creates a new CashflowHandler.
func NewCashflowHandler(reporting reportingService) *CashflowHandler {
	return &CashflowHandler{Reporting: reporting}
}

// Register registers the cashflow endpoint with the Huma API.
func (h *CashflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-cashflow",
		Method:      http.MethodGet,
		Path:        "/reports/cashflow",
		Summary:     "Cashflow series",
		Description: "Returns income, expense, and balance bucketed by date, sorted ascending by bucket key.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CashflowHandler) handle(ctx context.Context, input *CashflowInput) (*CashflowOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}
	logData := logging.GetLogData(ctx)

	dateRange, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("cashflowMs")
	}
	series, err := h.Reporting.Cashflow(ctx, userID, service.Period(input.Period), dateRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Transform(err, "failed to compute cashflow")
	}

	body := make([]CashflowBucket, len(series))
	for i, bucket := range series {
		body[i] = CashflowBucket{
			Date:    bucket.Date,
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
			Balance: bucket.Balance.String(),
		}
	}
	return &CashflowOutput{Body: body}, nil
}

// CategoryTotal is one row of the category distribution on the wire.
type CategoryTotal struct {
	CategoryID   string `json:"categoryId" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	Total        string `json:"total" doc:"Decimal amount total"`
}

// CategoriesInput is the Huma input for the category distribution report.
type CategoriesInput struct {
	Type   string `query:"type" enum:"income,expense" doc:"Optional transaction type filter; empty matches both"`
	Period string `query:"period" enum:"month,quarter,year" doc:"Optional window: the current calendar month, quarter, or year"`
}

// CategoriesOutput is the Huma output for the category distribution report.
type CategoriesOutput struct {
	Body []CategoryTotal
}

// CategoriesHandler handles GET /reports/categories.
type CategoriesHandler struct {
	Reporting reportingService
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(reporting reportingService) *CategoriesHandler {
	return &CategoriesHandler{Reporting: reporting}
}

// Register registers the category distribution endpoint with the Huma API.
func (h *CategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-categories",
		Method:      http.MethodGet,
		Path:        "/reports/categories",
		Summary:     "Category distribution",
		Description: "Returns per-category totals sorted descending by total; consumers truncate for top-category views.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CategoriesHandler) handle(ctx context.Context, input *CategoriesInput) (*CategoriesOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}

	totals, err := h.Reporting.CategoryDistribution(ctx, userID, transactions.Type(input.Type), service.Period(input.Period))
	if err != nil {
		return nil, httperr.Transform(err, "failed to compute category distribution")
	}

	body := make([]CategoryTotal, len(totals))
	for i, total := range totals {
		body[i] = CategoryTotal{
			CategoryID:   total.CategoryID.String(),
			CategoryName: total.CategoryName,
			Total:        total.Total.String(),
		}
	}
	return &CategoriesOutput{Body: body}, nil
}

// SummaryInput is the Huma input for the summary report.
type SummaryInput struct {
	From string `query:"from" doc:"Optional RFC3339 or YYYY-MM-DD lower bound"`
	To   string `query:"to" doc:"Optional RFC3339 or YYYY-MM-DD upper bound"`
}

// SummaryBody is the summary report on the wire. All fields are numeric
// strings and always present, "0" when nothing matches.
type SummaryBody struct {
	Income             string `json:"income" doc:"Total income"`
	Expense            string `json:"expense" doc:"Total expense"`
	Balance            string `json:"balance" doc:"income - expense"`
	TaxRelevantIncome  string `json:"taxRelevantIncome" doc:"Income marked tax-relevant"`
	TaxRelevantExpense string `json:"taxRelevantExpense" doc:"Expense marked tax-relevant"`
}

// SummaryOutput is the Huma output for the summary report.
type SummaryOutput struct {
	Body SummaryBody
}

// SummaryHandler handles GET /reports/summary.
type SummaryHandler struct {
	Reporting reportingService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(reporting reportingService) *SummaryHandler {
	return &SummaryHandler{Reporting: reporting}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-summary",
		Method:      http.MethodGet,
		Path:        "/reports/summary",
		Summary:     "Financial summary",
		Description: "Returns overall totals plus tax-relevant subtotals for the optional date range.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}

	dateRange, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	summary, err := h.Reporting.Summary(ctx, userID, dateRange)
	if err != nil {
		return nil, httperr.Transform(err, "failed to compute summary")
	}

	return &SummaryOutput{Body: SummaryBody{
		Income:             summary.Income.String(),
		Expense:            summary.Expense.String(),
		Balance:            summary.Balance.String(),
		TaxRelevantIncome:  summary.TaxRelevantIncome.String(),
		TaxRelevantExpense: summary.TaxRelevantExpense.String(),
	}}, nil
}

func parseDateRange(from, to string) (*service.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	dateRange := &service.DateRange{}
	if from != "" {
		parsed, err := parseDate(from)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
		dateRange.From = &parsed
	}
	if to != "" {
		parsed, err := parseDate(to)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
		dateRange.To = &parsed
	}
	return dateRange, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return date, nil
	}
	return time.Parse("2006-01-02", value)
}
