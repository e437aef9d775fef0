package database

import (
	"testing"

	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// sqlite only enforces foreign keys when asked
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestMigrateAndSeedAreIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Migrate())
	require.NoError(t, Seed())

	// second run must be a no-op
	require.NoError(t, Migrate())
	require.NoError(t, Seed())

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.Equal(t, int64(2), userCount)
}

func TestSeedCreatesDemoAccounts(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Migrate())
	require.NoError(t, Seed())

	var student models.User
	require.NoError(t, db.Where("rol = ?", models.RolEstudiante).First(&student).Error)
	require.NotEmpty(t, student.PasswordHash)
	require.NotEqual(t, "estudiante123", student.PasswordHash, "seed password must be stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("estudiante123")))

	var teacher models.User
	require.NoError(t, db.Where("rol = ?", models.RolDocente).First(&teacher).Error)
	require.NotEqual(t, student.Email, teacher.Email)
}

func TestUserDeleteCascades(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Migrate())

	user := models.User{Nombre: "Cascade", Email: "cascade@demo.edu", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, db.Create(&models.Task{Titulo: "t", UsuarioID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Note{Titulo: "n", UsuarioID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Reminder{Mensaje: "r", UsuarioID: user.ID}).Error)

	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	var tasks, notes, reminders int64
	db.Model(&models.Task{}).Count(&tasks)
	db.Model(&models.Note{}).Count(&notes)
	db.Model(&models.Reminder{}).Count(&reminders)

	require.Zero(t, tasks)
	require.Zero(t, notes)
	require.Zero(t, reminders)
}
