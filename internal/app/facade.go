package app

import (
	"context"

	"github.com/vitrine/catalog/internal/domain/model"
	"github.com/vitrine/catalog/internal/usecase"
)

// CatalogFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer.
type CatalogFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
}

func NewCatalogFacade(auth *usecase.AuthUseCase, products *usecase.ProductUseCase) *CatalogFacade {
	return &CatalogFacade{auth: auth, products: products}
}

func (f *CatalogFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *CatalogFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *CatalogFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CatalogFacade) CreateProduct(ctx context.Context, userID int64, name, description string, quantity int, price float64) (*model.Product, error) {
	return f.products.Create(ctx, userID, name, description, quantity, price)
}

func (f *CatalogFacade) Products(ctx context.Context, userID int64) ([]model.Product, error) {
	return f.products.List(ctx, userID)
}

func (f *CatalogFacade) ProductsByName(ctx context.Context, userID int64, name string) ([]model.Product, error) {
	return f.products.FindByName(ctx, name, userID)
}

func (f *CatalogFacade) Product(ctx context.Context, userID int64, id string) (*model.Product, error) {
	return f.products.GetByID(ctx, id, userID)
}

func (f *CatalogFacade) UpdateProduct(ctx context.Context, userID int64, id string, name, description string, quantity int, price float64) (*model.Product, error) {
	return f.products.Update(ctx, id, userID, name, description, quantity, price)
}

func (f *CatalogFacade) DeleteProduct(ctx context.Context, userID int64, id string) (bool, error) {
	return f.products.Delete(ctx, id, userID)
}
