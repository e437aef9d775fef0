package repository

import (
	"github.com/febarreras/agenda-escolar-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user; owned tareas, notas and recordatorios go with it
	// via the cascade constraint
	Delete(id uint64) error
}

// TaskPatch carries the optional fields of a task update. A nil field means
// "leave it alone"; only non-nil fields are written.
type TaskPatch struct {
	Titulo      *string
	Descripcion *string
	Fecha       *string
	Tipo        *models.TaskTipo
	Estatus     *models.TaskEstatus
}

// TaskRepository defines the interface for tarea data access
type TaskRepository interface {
	// Create creates a new tarea
	Create(task *models.Task) error

	// FindByID finds a tarea by ID
	FindByID(id uint64) (*models.Task, error)

	// ListForUser returns the tareas visible to a user: their own, plus every
	// grupal tarea when the user is an estudiante. Ordered by fecha ascending.
	ListForUser(userID uint64, rol models.UserRol) ([]models.Task, error)

	// Update applies a patch to a tarea
	Update(id uint64, patch TaskPatch) error

	// Delete removes a tarea; deleting an absent id is a no-op
	Delete(id uint64) error
}

// NoteRepository defines the interface for nota data access
type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uint64) (*models.Note, error)

	// ListForUser returns the user's notas, newest first
	ListForUser(userID uint64) ([]models.Note, error)

	// Update replaces titulo, contenido and color_fondo
	Update(note *models.Note) error
	Delete(id uint64) error
}

// ReminderRepository defines the interface for recordatorio data access
type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	FindByID(id uint64) (*models.Reminder, error)

	// ListForUser returns the user's recordatorios ordered by fecha_hora
	ListForUser(userID uint64) ([]models.Reminder, error)

	// Update replaces mensaje and fecha_hora
	Update(reminder *models.Reminder) error
	Delete(id uint64) error
}
