package entity

import "time"

// StorageLocation representa un hueco físico de almacenamiento dentro de una zona.
// Address sigue el formato FILA-BAHÍA-NIVEL (ej. "B-2-2") y es único.
type StorageLocation struct {
	ID        string
	ZoneID    string
	Address   string
	Active    bool
	CreatedAt time.Time
}
