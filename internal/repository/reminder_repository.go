package repository

import (
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"gorm.io/gorm"
)

// GormReminderRepository is a GORM implementation of ReminderRepository
type GormReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &GormReminderRepository{db: db}
}

// Create creates a new recordatorio
func (r *GormReminderRepository) Create(reminder *models.Reminder) error {
	return r.db.Create(reminder).Error
}

// FindByID finds a recordatorio by ID
func (r *GormReminderRepository) FindByID(id uint64) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.First(&reminder, id).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// ListForUser returns the user's recordatorios, soonest first
func (r *GormReminderRepository) ListForUser(userID uint64) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := r.db.Where("usuario_id = ?", userID).
		Order("fecha_hora ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// Update replaces mensaje and fecha_hora of a recordatorio
func (r *GormReminderRepository) Update(reminder *models.Reminder) error {
	return r.db.Model(reminder).Updates(map[string]interface{}{
		"mensaje":    reminder.Mensaje,
		"fecha_hora": reminder.FechaHora,
	}).Error
}

// Delete removes a recordatorio by id; absent ids are a no-op
func (r *GormReminderRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Reminder{}, id).Error
}
