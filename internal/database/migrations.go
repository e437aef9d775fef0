package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/febarreras/agenda-escolar-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate ensures the four agenda tables exist. AutoMigrate is a no-op for
// tables that are already in place, so re-running it is safe.
func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Note{},
		&models.Reminder{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

// demo accounts created on first boot so the frontend has something to log
// in with
var seedUsers = []struct {
	nombre   string
	email    string
	password string
	rol      models.UserRol
}{
	{"Ana García", "ana@demo.edu", "estudiante123", models.RolEstudiante},
	{"Carlos Ortega", "carlos@demo.edu", "docente123", models.RolDocente},
}

// Seed inserts the demo users if they are absent. Keyed on the unique email,
// so re-running never duplicates rows.
func Seed() error {
	for _, su := range seedUsers {
		var existing models.User
		err := DB.Where("email = ?", su.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check seed user %s: %w", su.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := models.User{
			Nombre:       su.nombre,
			Email:        su.email,
			PasswordHash: string(hash),
			Rol:          su.rol,
		}
		if err := DB.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.email, err)
		}
		log.Printf("Seeded demo user %s (%s)", su.email, su.rol)
	}
	return nil
}
