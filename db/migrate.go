package db

import (
	"log"

	"gorm.io/datatypes"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/config"
	"github.com/endayshebocah/tckokuo/helper"
)

// Migrate creates the user table and seeds the break-glass admin account from
// BOOTSTRAP_ADMIN_NAME / BOOTSTRAP_ADMIN_PIN when no user exists yet. The
// seeded PIN is stored bcrypt-hashed like every other account.
func Migrate() {
	if err := DB.AutoMigrate(&model.User{}); err != nil {
		log.Fatal("Failed to migrate user table:", err)
	}

	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count users:", err)
	}
	if count > 0 {
		return
	}

	name := config.Env.BootstrapAdmin
	pin := config.Env.BootstrapAdminPIN
	if name == "" || pin == "" {
		log.Println("Warning: no users exist and no bootstrap admin configured")
		return
	}

	hash, err := helper.HashPIN(pin)
	if err != nil {
		log.Fatal("Failed to hash bootstrap admin PIN:", err)
	}

	perms := datatypes.JSONMap{}
	for key, granted := range model.DefaultPermissions(model.RoleAdmin) {
		perms[key] = granted
	}

	admin := model.User{
		Name:        name,
		PINHash:     hash,
		Role:        model.RoleAdmin,
		Permissions: perms,
		IsActive:    true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed bootstrap admin:", err)
	}
	log.Println("Seeded bootstrap admin account:", name)
}
