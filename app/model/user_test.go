package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDefaultPermissions(t *testing.T) {
	trainer := DefaultPermissions(RoleTrainer)
	assert.True(t, trainer[PermAttendance])
	assert.False(t, trainer[PermAccessManagement])

	admin := DefaultPermissions(RoleAdmin)
	assert.True(t, admin[PermAccessManagement])
}

func TestHasPermission(t *testing.T) {
	trainer := User{
		Role: RoleTrainer,
		Permissions: datatypes.JSONMap{
			PermComplaints: true,
			PermTrash:      false,
		},
	}
	assert.True(t, trainer.HasPermission(PermComplaints))
	assert.False(t, trainer.HasPermission(PermTrash))
	assert.False(t, trainer.HasPermission(PermBulkDelete))

	// Admins pass every gate regardless of the stored map.
	admin := User{Role: RoleAdmin}
	assert.True(t, admin.HasPermission(PermAccessManagement))
}

func TestPermissionList(t *testing.T) {
	u := User{
		Role: RoleTrainer,
		Permissions: datatypes.JSONMap{
			PermAttendance: true,
			PermFollowUp:   true,
		},
	}
	assert.Equal(t, []string{PermAttendance, PermFollowUp}, u.PermissionList())
}
