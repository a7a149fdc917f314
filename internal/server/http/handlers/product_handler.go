package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vitrine/catalog/internal/domain/errors"
	"github.com/vitrine/catalog/internal/domain/model"
	"github.com/vitrine/catalog/internal/server/http/dto"
)

// ProductHandler manages product endpoints. Every operation acts on behalf
// of the authenticated user; records of other users are never visible.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), userID, req.Name, req.Description, req.Quantity, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// List handles GET /products. An optional name query narrows the listing
// to exact name matches.
func (h *ProductHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)

	var (
		products []model.Product
		err      error
	)
	if name := c.Query("name"); name != "" {
		products, err = h.facade.ProductsByName(c.Request.Context(), userID, name)
	} else {
		products, err = h.facade.Products(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)

	product, err := h.facade.Product(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), userID, c.Param("id"), req.Name, req.Description, req.Quantity, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)

	removed, err := h.facade.DeleteProduct(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "product not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "product not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
	}
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		Price:       product.Price,
	}
}
