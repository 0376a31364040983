package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/inventory"
)

func TestMayApply_PorRolYSigno(t *testing.T) {
	cases := []struct {
		name  string
		role  string
		delta int64
		want  bool
	}{
		{"admin agrega", entity.RoleAdmin, 10, true},
		{"admin retira", entity.RoleAdmin, -10, true},
		{"especialista agrega", entity.RoleInventorySpecialist, 1, true},
		{"especialista retira", entity.RoleInventorySpecialist, -1, true},
		{"picker retira", entity.RolePicker, -5, true},
		{"picker no agrega", entity.RolePicker, 5, false},
		{"rol desconocido retira", "Auditor", -1, false},
		{"rol desconocido agrega", "Auditor", 1, false},
		{"rol vacío", "", -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.MayApply(tc.role, tc.delta))
		})
	}
}

// Un delta cero no es un ajuste válido para ningún rol.
func TestMayApply_DeltaCeroSiempreRechazado(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleInventorySpecialist, entity.RolePicker, "Auditor"} {
		assert.False(t, inventory.MayApply(role, 0), "rol %s con delta 0", role)
	}
}

// La política es sensible a mayúsculas: los roles se guardan canónicos.
func TestMayApply_RolesSonCaseSensitive(t *testing.T) {
	assert.False(t, inventory.MayApply("admin", 1))
	assert.False(t, inventory.MayApply("picker", -1))
}
