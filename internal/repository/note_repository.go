package repository

import (
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new nota
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByID finds a nota by ID
func (r *GormNoteRepository) FindByID(id uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListForUser returns the user's notas, newest first
func (r *GormNoteRepository) ListForUser(userID uint64) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Where("usuario_id = ?", userID).
		Order("creado_en DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update replaces titulo, contenido and color_fondo of a nota
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Model(note).Updates(map[string]interface{}{
		"titulo":      note.Titulo,
		"contenido":   note.Contenido,
		"color_fondo": note.ColorFondo,
	}).Error
}

// Delete removes a nota by id; absent ids are a no-op
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Note{}, id).Error
}
