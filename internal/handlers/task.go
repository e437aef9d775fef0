package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/febarreras/agenda-escolar-api/internal/errors"
	"github.com/febarreras/agenda-escolar-api/internal/middleware"
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/febarreras/agenda-escolar-api/internal/repository"
	"github.com/febarreras/agenda-escolar-api/internal/services"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTareas returns the tareas visible to the session user, ordered by
// fecha. Estudiantes also see every grupal tarea.
func (h *TaskHandler) ListTareas(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.taskService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Error obteniendo tareas")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTarea creates a new tarea owned by the session user
func (h *TaskHandler) CreateTarea(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTareaRequest struct {
		Titulo      string          `json:"titulo" binding:"required"`
		Descripcion string          `json:"descripcion"`
		Fecha       string          `json:"fecha"`
		Tipo        models.TaskTipo `json:"tipo" binding:"omitempty,oneof=personal grupal"`
	}

	var req CreateTareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		Tipo:        req.Tipo,
		UsuarioID:   userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleEmpty) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Error creando tarea")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      task.ID,
		"message": "Creada",
	})
}

// UpdateTarea applies a partial update. Every field is optional; an
// estatus-only body flips the estatus and nothing else, a full edit keeps
// whatever estatus the tarea already had.
func (h *TaskHandler) UpdateTarea(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTareaRequest struct {
		Titulo      *string             `json:"titulo"`
		Descripcion *string             `json:"descripcion"`
		Fecha       *string             `json:"fecha"`
		Tipo        *models.TaskTipo    `json:"tipo" binding:"omitempty,oneof=personal grupal"`
		Estatus     *models.TaskEstatus `json:"estatus" binding:"omitempty,oneof=pendiente completada"`
	}

	var req UpdateTareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.taskService.Update(userID, taskID, repository.TaskPatch{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		Tipo:        req.Tipo,
		Estatus:     req.Estatus,
	})
	if err != nil {
		respondTareaError(c, err, "Error actualizando tarea")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tarea actualizada correctamente",
	})
}

// DeleteTarea removes a tarea. Deleting an id that is already gone still
// reports success.
func (h *TaskHandler) DeleteTarea(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(userID, taskID); err != nil {
		respondTareaError(c, err, "Error eliminando tarea")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Eliminada",
	})
}

func respondTareaError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Tarea no encontrada")
	case errors.Is(err, services.ErrTaskPermissionDenied):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, fallback)
	}
}

// parseIDParam reads the :id path segment; on failure it writes the 400
// itself and returns ok=false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
