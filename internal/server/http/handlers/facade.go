package handlers

import (
	"context"

	"github.com/vitrine/catalog/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// ProductFacade encapsulates product operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, userID int64, name, description string, quantity int, price float64) (*model.Product, error)
	Products(ctx context.Context, userID int64) ([]model.Product, error)
	ProductsByName(ctx context.Context, userID int64, name string) ([]model.Product, error)
	Product(ctx context.Context, userID int64, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, userID int64, id string, name, description string, quantity int, price float64) (*model.Product, error)
	DeleteProduct(ctx context.Context, userID int64, id string) (bool, error)
}

// CatalogFacade aggregates the full set of operations used across handlers.
type CatalogFacade interface {
	AuthFacade
	ProductFacade
}
