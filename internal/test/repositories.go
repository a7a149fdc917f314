package test

import (
	"context"

	domainErrors "github.com/vitrine/catalog/internal/domain/errors"
	"github.com/vitrine/catalog/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with an initialized map.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in-memory, preserving insertion
// order and applying the same owner scoping as the real storage.
type ProductRepositoryStub struct {
	CreateFn     func(context.Context, *model.Product) (*model.Product, error)
	ListFn       func(context.Context, int64) ([]model.Product, error)
	GetFn        func(context.Context, string, int64) (*model.Product, error)
	FindByNameFn func(context.Context, string, int64) ([]model.Product, error)
	UpdateFn     func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn     func(context.Context, string, int64) (bool, error)

	Products []model.Product
	Err      error
}

// Create appends product to the in-memory store.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	s.Products = append(s.Products, stored)
	return &stored, nil
}

// ListByOwner returns products belonging to userID in insertion order.
func (s *ProductRepositoryStub) ListByOwner(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetByID returns the product only when owned by userID.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string, userID int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id && p.UserID == userID {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByName returns owner's products matching name.
func (s *ProductRepositoryStub) FindByName(ctx context.Context, name string, userID int64) ([]model.Product, error) {
	if s.FindByNameFn != nil {
		return s.FindByNameFn(ctx, name, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.Name == name && p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

// Update replaces mutable fields when the record exists and is owned.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i, p := range s.Products {
		if p.ID == product.ID && p.UserID == product.UserID {
			s.Products[i].Name = product.Name
			s.Products[i].Description = product.Description
			s.Products[i].Quantity = product.Quantity
			s.Products[i].Price = product.Price
			updated := s.Products[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the record and reports whether anything was removed.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string, userID int64) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	if s.Err != nil {
		return false, s.Err
	}
	for i, p := range s.Products {
		if p.ID == id && p.UserID == userID {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
