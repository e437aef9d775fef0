package repository

import (
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new tarea
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a tarea by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListForUser returns the tareas visible to a user ordered by fecha
// ascending. Estudiantes see their own tareas plus every grupal tarea from
// any owner; a single OR keeps an owned grupal tarea from appearing twice.
func (r *GormTaskRepository) ListForUser(userID uint64, rol models.UserRol) ([]models.Task, error) {
	var tasks []models.Task
	query := r.db.Model(&models.Task{})

	if rol == models.RolEstudiante {
		query = query.Where("usuario_id = ? OR tipo = ?", userID, models.TipoGrupal)
	} else {
		query = query.Where("usuario_id = ?", userID)
	}

	if err := query.Order("fecha ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a patch to a tarea. Only the fields present in the patch
// are written, so an estatus-only patch never clobbers the rest of the row
// and a full edit never resets the estatus.
func (r *GormTaskRepository) Update(id uint64, patch TaskPatch) error {
	updates := map[string]interface{}{}
	if patch.Titulo != nil {
		updates["titulo"] = *patch.Titulo
	}
	if patch.Descripcion != nil {
		updates["descripcion"] = *patch.Descripcion
	}
	if patch.Fecha != nil {
		updates["fecha"] = *patch.Fecha
	}
	if patch.Tipo != nil {
		updates["tipo"] = *patch.Tipo
	}
	if patch.Estatus != nil {
		updates["estatus"] = *patch.Estatus
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a tarea by id; absent ids are a no-op
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
