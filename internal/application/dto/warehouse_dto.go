package dto

import (
	"encoding/json"
	"time"
)

// CreateWarehouseRequest body para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateZoneRequest body para crear una zona dentro de una bodega.
type CreateZoneRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateStorageLocationRequest body para crear una ubicación de almacenamiento.
type CreateStorageLocationRequest struct {
	ZoneID  string `json:"zone_id"`
	Address string `json:"address"`
}

// StorageLocationResponse salida de una ubicación.
type StorageLocationResponse struct {
	ID        string    `json:"id"`
	ZoneID    string    `json:"zone_id"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
