package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidAdjustment  = errors.New("la cantidad resultante no puede ser negativa")
	ErrInsufficientStock  = errors.New("cantidad insuficiente para recoger")
)

// ErrNothingToPick es el caso de ErrInvalidAdjustment en el flujo de picking:
// no existe entrada de inventario (o está en cero) en la ubicación escaneada.
var ErrNothingToPick = fmt.Errorf("%w: no hay inventario disponible en esa ubicación", ErrInvalidAdjustment)
