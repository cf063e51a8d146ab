package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// Capability keys gating which screens and menu actions a user sees.
const (
	PermAttendance       = "attendance"
	PermFollowUp         = "followUp"
	PermTrainerReports   = "trainerReports"
	PermSkillSummary     = "skillSummary"
	PermComplaints       = "complaints"
	PermDataRepair       = "dataRepair"
	PermTrash            = "trash"
	PermBulkDelete       = "bulkDelete"
	PermAccessManagement = "accessManagement"
)

func PermissionKeys() []string {
	return []string{
		PermAttendance, PermFollowUp, PermTrainerReports, PermSkillSummary,
		PermComplaints, PermDataRepair, PermTrash, PermBulkDelete,
		PermAccessManagement,
	}
}

// DefaultPermissions grants every capability except access management, which
// only admins get by default.
func DefaultPermissions(role string) map[string]bool {
	perms := make(map[string]bool, len(PermissionKeys()))
	for _, key := range PermissionKeys() {
		perms[key] = key != PermAccessManagement || role == RoleAdmin
	}
	return perms
}

type User struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string            `gorm:"size:100;unique;not null" json:"name"`
	PINHash     string            `gorm:"not null" json:"-"`
	Role        string            `gorm:"size:20;not null;default:trainer" json:"role"`
	Permissions datatypes.JSONMap `json:"permissions"`
	IsActive    bool              `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// HasPermission checks the stored permission map; admins pass every check.
func (u User) HasPermission(key string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	granted, _ := u.Permissions[key].(bool)
	return granted
}

func (u User) PermissionList() []string {
	var granted []string
	for _, key := range PermissionKeys() {
		if u.HasPermission(key) {
			granted = append(granted, key)
		}
	}
	return granted
}

type JWTClaims struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	Type        string    `json:"type"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Name string `json:"name" validate:"required"`
	PIN  string `json:"pin" validate:"required"`
}

type LoginUser struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

type CreateUserRequest struct {
	Name        string          `json:"name" validate:"required"`
	PIN         string          `json:"pin" validate:"required,min=4"`
	Role        string          `json:"role" validate:"required,oneof=trainer admin"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

type UpdateUserRequest struct {
	Name        *string          `json:"name,omitempty"`
	PIN         *string          `json:"pin,omitempty" validate:"omitempty,min=4"`
	Role        *string          `json:"role,omitempty" validate:"omitempty,oneof=trainer admin"`
	Permissions *map[string]bool `json:"permissions,omitempty"`
}
