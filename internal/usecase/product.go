package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/vitrine/catalog/internal/domain/model"
	"github.com/vitrine/catalog/internal/domain/repository"
)

// ProductUseCase encapsulates owner-scoped product CRUD.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create validates input and persists a new product owned by userID.
// The product ID is generated server-side.
func (u *ProductUseCase) Create(ctx context.Context, userID int64, name, description string, quantity int, price float64) (*model.Product, error) {
	if err := ValidateProduct(name, description, quantity, price); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
	}

	return u.products.Create(ctx, product)
}

// List returns all products owned by userID.
func (u *ProductUseCase) List(ctx context.Context, userID int64) ([]model.Product, error) {
	return u.products.ListByOwner(ctx, userID)
}

// GetByID returns the product only when it exists and belongs to userID.
// A record owned by another user yields ErrNotFound, same as a missing one.
func (u *ProductUseCase) GetByID(ctx context.Context, id string, userID int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id, userID)
}

// FindByName returns all products of userID matching name exactly.
func (u *ProductUseCase) FindByName(ctx context.Context, name string, userID int64) ([]model.Product, error) {
	return u.products.FindByName(ctx, name, userID)
}

// Update replaces all four mutable fields of the product after validation.
func (u *ProductUseCase) Update(ctx context.Context, id string, userID int64, name, description string, quantity int, price float64) (*model.Product, error) {
	if err := ValidateProduct(name, description, quantity, price); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
	}

	return u.products.Update(ctx, product)
}

// Delete removes the product and reports whether a record was removed.
func (u *ProductUseCase) Delete(ctx context.Context, id string, userID int64) (bool, error) {
	return u.products.Delete(ctx, id, userID)
}
