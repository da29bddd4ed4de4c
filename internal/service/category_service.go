package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/errdefs"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/categories"
	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      categories.Type
	CreatedAt time.Time
}

// CategoryService handles category business logic. Categories have no update
// or delete path: once a transaction references one it stays immutable.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category for the user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string, categoryType categories.Type) (*Category, error) {
	var invalid []string
	if strings.TrimSpace(name) == "" {
		invalid = append(invalid, "name")
	}
	if !categoryType.Valid() {
		invalid = append(invalid, "type")
	}
	if len(invalid) > 0 {
		return nil, &errdefs.ValidationError{Fields: invalid}
	}

	row, err := s.storage.Categories.Insert(ctx, &categories.CategoryCreate{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	})
	if err != nil {
		return nil, err
	}

	converted := categoryFromStorage(row)
	return &converted, nil
}

// ListCategories returns the user's categories sorted by name. A non-empty
// usableFor keeps only categories whose type admits that transaction
// direction; categories typed "both" always pass.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, usableFor transactions.Type) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, 0, len(rows))
	for _, row := range rows {
		if usableFor != "" && !row.Type.Matches(usableFor) {
			continue
		}
		converted = append(converted, categoryFromStorage(row))
	}
	return converted, nil
}

func categoryFromStorage(row *categories.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		CreatedAt: row.CreatedAt,
	}
}
