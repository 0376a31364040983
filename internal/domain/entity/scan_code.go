package entity

import "time"

// ScanCode representa una etiqueta física (QR impreso) que identifica una
// ubicación de almacenamiento. InternalID es el token opaco que presenta el
// escáner; LabelAddress es la dirección de la ubicación copiada al momento de
// crear la etiqueta (no se resincroniza si la ubicación cambia de dirección).
// LocationID nunca cambia una vez creado; desactivar no elimina la etiqueta.
type ScanCode struct {
	ID           string
	LocationID   string
	InternalID   string // UUID, único global
	LabelAddress string
	Active       bool
	CreatedAt    time.Time
}
