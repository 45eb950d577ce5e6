package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-backend/application/services"
	"pos-backend/pkg/utils"
)

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	products *services.ProductService
	logger   *zap.Logger
}

// NewProductHandler creates a product handler.
func NewProductHandler(products *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// CreateProductRequest is the body for POST /products.
type CreateProductRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	SKU               string `json:"sku" validate:"required,min=1,max=64"`
	Price             string `json:"price" validate:"required"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	CategoryID        string `json:"categoryId,omitempty"`
	LowStockThreshold int    `json:"lowStockThreshold,omitempty" validate:"min=0"`
}

// UpdateProductRequest is the body for PUT /products/{id}.
type UpdateProductRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Price             *string `json:"price,omitempty"`
	CategoryID        *string `json:"categoryId,omitempty"`
	LowStockThreshold *int    `json:"lowStockThreshold,omitempty" validate:"omitempty,min=0"`
	Active            *bool   `json:"active,omitempty"`
}

// AdjustStockRequest is the body for PATCH /products/{id}/stock.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		respondBadRequest(w, "invalid price: "+req.Price)
		return
	}

	product, err := h.products.Create(r.Context(), services.CreateProductInput{
		Name:              req.Name,
		SKU:               req.SKU,
		Price:             price,
		Quantity:          req.Quantity,
		CategoryID:        req.CategoryID,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	input := services.UpdateProductInput{
		Name:              req.Name,
		CategoryID:        req.CategoryID,
		LowStockThreshold: req.LowStockThreshold,
		Active:            req.Active,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			respondBadRequest(w, "invalid price: "+*req.Price)
			return
		}
		input.Price = &price
	}

	product, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// AdjustStock handles PATCH /products/{id}/stock.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.Delta == 0 {
		respondBadRequest(w, "delta must be non-zero")
		return
	}

	product, err := h.products.AdjustQuantity(r.Context(), chi.URLParam(r, "id"), req.Delta)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}
