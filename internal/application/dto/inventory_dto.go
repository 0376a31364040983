package dto

import "time"

// AdjustRequest body para POST /api/inventory/adjust.
// Delta > 0 agrega, delta < 0 retira; Commit=false devuelve solo un preview.
type AdjustRequest struct {
	LocationID string `json:"location_id"`
	ProductID  string `json:"product_id"`
	Delta      int64  `json:"delta"`
	Commit     bool   `json:"commit"`
}

// PickRequest body para POST /api/inventory/pick (siempre commit, solo retiro).
type PickRequest struct {
	ScanCode  string `json:"scan_code"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// EntryResponse una entrada del ledger tal como se persiste.
type EntryResponse struct {
	LocationID    string    `json:"location_id"`
	ProductID     string    `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	LastUpdatedBy string    `json:"last_updated_by"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PreviewResponse resultado de un ajuste sin commit (dry run sin persistencia).
type PreviewResponse struct {
	CurrentQuantity  int64 `json:"current_quantity"`
	ProposedQuantity int64 `json:"proposed_quantity"`
	Delta            int64 `json:"delta"`
}

// LocationInventoryResponse entrada enriquecida para el detalle de una ubicación.
type LocationInventoryResponse struct {
	EntryResponse
	Product       ProductSummary `json:"product"`
	UpdatedByName string         `json:"updated_by_name,omitempty"`
	UpdatedByRole string         `json:"updated_by_role,omitempty"`
}

// ProductSummary resumen mínimo de producto para listados de inventario.
type ProductSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

// ProductLocationResponse una ubicación donde hay stock del producto.
type ProductLocationResponse struct {
	LocationID      string    `json:"location_id"`
	LocationAddress string    `json:"location_address"`
	LocationActive  bool      `json:"location_active"`
	ZoneID          string    `json:"zone_id"`
	Quantity        int64     `json:"quantity"`
	LastUpdatedBy   string    `json:"last_updated_by"`
	UpdatedByName   string    `json:"updated_by_name,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ActivityLogResponse un registro de la bitácora.
type ActivityLogResponse struct {
	ID        string           `json:"id"`
	Actor     ActorSummary     `json:"actor"`
	Action    string           `json:"action"`
	Details   ActivityDetails  `json:"details"`
	Timestamp time.Time        `json:"timestamp"`
}

// ActorSummary identidad mínima del actor en listados.
type ActorSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// ActivityDetails payload estructurado que espeja la frase de la acción.
type ActivityDetails struct {
	LocationID        string `json:"location_id"`
	ProductID         string `json:"product_id"`
	Delta             int64  `json:"delta"`
	ResultingQuantity int64  `json:"resulting_quantity"`
}
