package test

import (
	"context"

	domainErrors "github.com/vitrine/catalog/internal/domain/errors"
	"github.com/vitrine/catalog/internal/domain/model"
)

// ProductFacadeStub provides controllable behaviour for product endpoints.
type ProductFacadeStub struct {
	CreateFn         func(context.Context, int64, string, string, int, float64) (*model.Product, error)
	ProductsFn       func(context.Context, int64) ([]model.Product, error)
	ProductsByNameFn func(context.Context, int64, string) ([]model.Product, error)
	ProductFn        func(context.Context, int64, string) (*model.Product, error)
	UpdateFn         func(context.Context, int64, string, string, string, int, float64) (*model.Product, error)
	DeleteFn         func(context.Context, int64, string) (bool, error)
}

// CreateProduct delegates to provided function or returns a default product.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, userID int64, name, description string, quantity int, price float64) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, name, description, quantity, price)
	}
	return &model.Product{ID: "stub-id", UserID: userID, Name: name, Description: description, Quantity: quantity, Price: price}, nil
}

// Products returns predefined products for given user.
func (s ProductFacadeStub) Products(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, userID)
	}
	return []model.Product{{ID: "stub-id", UserID: userID, Name: "Pen"}}, nil
}

// ProductsByName returns products matching the provided name.
func (s ProductFacadeStub) ProductsByName(ctx context.Context, userID int64, name string) ([]model.Product, error) {
	if s.ProductsByNameFn != nil {
		return s.ProductsByNameFn(ctx, userID, name)
	}
	return []model.Product{{ID: "stub-id", UserID: userID, Name: name}}, nil
}

// Product returns configured product or not found.
func (s ProductFacadeStub) Product(ctx context.Context, userID int64, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, userID, id)
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProduct delegates to override or echoes the supplied fields.
func (s ProductFacadeStub) UpdateProduct(ctx context.Context, userID int64, id string, name, description string, quantity int, price float64) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, name, description, quantity, price)
	}
	return &model.Product{ID: id, UserID: userID, Name: name, Description: description, Quantity: quantity, Price: price}, nil
}

// DeleteProduct reports a removal unless overridden.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, userID int64, id string) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return true, nil
}
