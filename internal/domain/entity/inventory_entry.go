package entity

import "time"

// InventoryEntry representa la cantidad actual de un producto en una ubicación
// de almacenamiento. Existe a lo sumo una entrada por par (ubicación, producto);
// se crea de forma perezosa en el primer ajuste y nunca se elimina (cantidad 0
// es un estado terminal válido). Invariante: Quantity >= 0 en todo momento.
type InventoryEntry struct {
	LocationID    string
	ProductID     string
	Quantity      int64
	LastUpdatedBy string // UserID del último commit
	UpdatedAt     time.Time
}

// LocationInventory es una entrada enriquecida para el detalle de una ubicación:
// incluye resumen del producto y la identidad del último actor.
type LocationInventory struct {
	InventoryEntry
	ProductName     string
	ProductSKU      string
	ProductCategory string
	UpdatedByName   string
	UpdatedByRole   string
}

// ProductLocation es una entrada enriquecida para responder "¿dónde está
// almacenado el producto P?" (solo entradas con cantidad > 0).
type ProductLocation struct {
	InventoryEntry
	LocationAddress string
	LocationActive  bool
	ZoneID          string
	UpdatedByName   string
}
