package entity

import (
	"encoding/json"
	"time"
)

// Warehouse representa una bodega física.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	Metadata  json.RawMessage
	CreatedAt time.Time
}

// Zone representa una zona dentro de una bodega (ej. "Zona A").
type Zone struct {
	ID          string
	WarehouseID string
	Name        string
	Description string
	CreatedAt   time.Time
}
