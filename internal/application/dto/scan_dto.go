package dto

import "time"

// ScanCodeResponse una etiqueta QR.
type ScanCodeResponse struct {
	ID           string    `json:"id"`
	LocationID   string    `json:"location_id"`
	InternalID   string    `json:"internal_id"`
	LabelAddress string    `json:"label_address"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateScanCodeRequest body para crear una etiqueta para una ubicación.
type CreateScanCodeRequest struct {
	LocationID string `json:"location_id"`
}

// UpdateScanCodeRequest body para activar/desactivar una etiqueta.
type UpdateScanCodeRequest struct {
	Active *bool `json:"active"`
}

// ScanCodeLabelResponse datos para que el frontend renderice la etiqueta
// imprimible; el gráfico QR se genera en el cliente a partir de ScanPayload.
type ScanCodeLabelResponse struct {
	InternalID  string    `json:"internal_id"`
	Address     string    `json:"address"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	ScanPayload string    `json:"scan_payload"`
}

// ScanResolveResponse resultado de resolver un código escaneado: la ubicación,
// todo su inventario y todas sus etiquetas.
type ScanResolveResponse struct {
	Location  StorageLocationResponse     `json:"location"`
	Inventory []LocationInventoryResponse `json:"inventory"`
	ScanCodes []ScanCodeResponse          `json:"scan_codes"`
}
