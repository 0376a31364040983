package dto

import (
	"encoding/json"
	"time"
)

// CreateProductRequest body para crear un producto.
type CreateProductRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"` // CON, HAN, ACC, GAM
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// UpdateProductRequest body para actualizar un producto (SKU inmutable).
type UpdateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
