package entity

import "time"

// ActivityLog es un hecho inmutable: "el actor X ejecutó la mutación Y en el
// instante Z". Action es la frase legible compuesta en el commit (nunca se
// recalcula); los campos desnormalizados son el dato canónico verificable por
// máquina y permiten filtrar sin join contra el ledger mutable.
type ActivityLog struct {
	ID                string
	ActorID           string
	Action            string
	LocationID        string
	ProductID         string
	Delta             int64 // con signo: positivo agrega, negativo retira
	ResultingQuantity int64
	Timestamp         time.Time

	// Resumen del actor (join de solo lectura para listados).
	ActorName string
	ActorRole string
}
