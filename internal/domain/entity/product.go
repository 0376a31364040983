package entity

import (
	"encoding/json"
	"time"
)

// Categorías válidas de producto.
const (
	CategoryConsole   = "CON"
	CategoryHandheld  = "HAN"
	CategoryAccessory = "ACC"
	CategoryGame      = "GAM"
)

// Product representa un producto o SKU del catálogo.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Category  string // CON, HAN, ACC, GAM
	Metadata  json.RawMessage
	CreatedAt time.Time
}

// ValidCategory indica si la categoría pertenece al catálogo permitido.
func ValidCategory(c string) bool {
	switch c {
	case CategoryConsole, CategoryHandheld, CategoryAccessory, CategoryGame:
		return true
	}
	return false
}
