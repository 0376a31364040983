package inventory

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// MayApply decide si el rol puede aplicar un cambio de cantidad con ese signo
// (servicio de dominio, función pura). Admin e InventorySpecialist pueden
// agregar y retirar; Picker solo puede retirar. Cualquier otro rol se rechaza.
// Un delta cero nunca es un ajuste válido.
func MayApply(role string, delta int64) bool {
	if delta == 0 {
		return false
	}
	switch role {
	case entity.RoleAdmin, entity.RoleInventorySpecialist:
		return true
	case entity.RolePicker:
		return delta < 0
	}
	return false
}
