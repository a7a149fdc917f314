package repository

import (
	"context"

	"github.com/vitrine/catalog/internal/domain/model"
)

// ProductRepository describes persistence operations with products.
// Every lookup and mutation is filtered by the owning user, so a record
// owned by somebody else behaves exactly like a missing one.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	ListByOwner(ctx context.Context, userID int64) ([]model.Product, error)
	GetByID(ctx context.Context, id string, userID int64) (*model.Product, error)
	FindByName(ctx context.Context, name string, userID int64) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string, userID int64) (bool, error)
}
