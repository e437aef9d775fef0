package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/febarreras/agenda-escolar-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("tarea not found")
	ErrTaskPermissionDenied = errors.New("tarea belongs to another user")
	ErrTitleEmpty           = errors.New("titulo cannot be empty")
)

// TaskService handles tarea business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// List returns the tareas visible to the user. The rol comes from the stored
// user row, never from the request.
func (s *TaskService) List(userID uint64) ([]models.Task, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.taskRepo.ListForUser(userID, user.Rol)
}

// CreateTaskInput represents input for creating a tarea
type CreateTaskInput struct {
	Titulo      string
	Descripcion string
	Fecha       string
	Tipo        models.TaskTipo
	UsuarioID   uint64
}

// Create creates a new tarea owned by the caller
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	titulo := strings.TrimSpace(input.Titulo)
	if titulo == "" {
		return nil, ErrTitleEmpty
	}

	tipo := input.Tipo
	if tipo == "" {
		tipo = models.TipoPersonal
	}

	task := &models.Task{
		Titulo:      titulo,
		Descripcion: input.Descripcion,
		Fecha:       input.Fecha,
		Tipo:        tipo,
		Estatus:     models.EstatusPendiente,
		UsuarioID:   input.UsuarioID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create tarea: %w", err)
	}
	return task, nil
}

// Update merges a patch into an existing tarea. Absent fields keep their
// stored value, which is what makes an estatus-only change and a full edit
// coexist without losing data.
func (s *TaskService) Update(userID, taskID uint64, patch repository.TaskPatch) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find tarea: %w", err)
	}

	if task.UsuarioID != userID {
		return nil, ErrTaskPermissionDenied
	}

	if patch.Titulo != nil && strings.TrimSpace(*patch.Titulo) == "" {
		return nil, ErrTitleEmpty
	}

	if err := s.taskRepo.Update(taskID, patch); err != nil {
		return nil, fmt.Errorf("failed to update tarea: %w", err)
	}

	return s.taskRepo.FindByID(taskID)
}

// Delete removes a tarea. Deleting an id that no longer exists succeeds, so
// repeated deletes stay idempotent; a tarea owned by someone else does not.
func (s *TaskService) Delete(userID, taskID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find tarea: %w", err)
	}

	if task.UsuarioID != userID {
		return ErrTaskPermissionDenied
	}

	return s.taskRepo.Delete(taskID)
}
