package category

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
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Type      string `json:"type" doc:"income, expense, or both"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(category service.Category) Category {
	return Category{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" doc:"Category name"`
	Type string `json:"type" required:"true" doc:"income, expense, or both"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryService is the interface for category operations.
type categoryService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name string, categoryType categories.Type) (*service.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID, usableFor transactions.Type) ([]service.Category, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	Categories categoryService
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(categoriesService categoryService) *CreateCategoryHandler {
	return &CreateCategoryHandler{Categories: categoriesService}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Create category",
		Description: "Creates a new category. Categories have no update or delete: once referenced by a transaction they stay immutable.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}

	created, err := h.Categories.CreateCategory(ctx, userID, input.Body.Name, categories.Type(input.Body.Type))
	if err != nil {
		return nil, httperr.Transform(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(*created),
	}, nil
}

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UsableFor string `query:"usableFor" enum:"income,expense" doc:"Keep only categories usable for this transaction type; 'both' categories always pass"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	Categories categoryService
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(categoriesService categoryService) *ListCategoriesHandler {
	return &ListCategoriesHandler{Categories: categoriesService}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the caller's categories sorted by name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, ok := identity.FromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing identity")
	}
	logData := logging.GetLogData(ctx)

	rows, err := h.Categories.ListCategories(ctx, userID, transactions.Type(input.UsableFor))
	if err != nil {
		return nil, httperr.Transform(err, "failed to list categories")
	}

	if logData != nil {
		logData.AddData("categoryCount", len(rows))
	}

	body := make([]Category, len(rows))
	for i, row := range rows {
		body[i] = fromService(row)
	}
	return &ListCategoriesOutput{Body: body}, nil
}
