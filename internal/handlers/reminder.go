package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/febarreras/agenda-escolar-api/internal/errors"
	"github.com/febarreras/agenda-escolar-api/internal/middleware"
	"github.com/febarreras/agenda-escolar-api/internal/models"
	"github.com/febarreras/agenda-escolar-api/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReminderHandler struct {
	reminderRepo repository.ReminderRepository
}

func NewReminderHandler(reminderRepo repository.ReminderRepository) *ReminderHandler {
	return &ReminderHandler{
		reminderRepo: reminderRepo,
	}
}

// ListRecordatorios returns the session user's recordatorios, soonest first
func (h *ReminderHandler) ListRecordatorios(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	reminders, err := h.reminderRepo.ListForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Error obteniendo recordatorios")
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// CreateRecordatorio creates a recordatorio owned by the session user
func (h *ReminderHandler) CreateRecordatorio(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateRecordatorioRequest struct {
		Mensaje   string `json:"mensaje" binding:"required"`
		FechaHora string `json:"fecha_hora"`
	}

	var req CreateRecordatorioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	reminder := models.Reminder{
		Mensaje:   req.Mensaje,
		FechaHora: req.FechaHora,
		UsuarioID: userID,
	}

	if err := h.reminderRepo.Create(&reminder); err != nil {
		apierrors.InternalError(c, "Error creando recordatorio")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": reminder.ID,
	})
}

// UpdateRecordatorio replaces mensaje and fecha_hora of a recordatorio the
// session user owns
func (h *ReminderHandler) UpdateRecordatorio(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	reminderID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateRecordatorioRequest struct {
		Mensaje   string `json:"mensaje" binding:"required"`
		FechaHora string `json:"fecha_hora"`
	}

	var req UpdateRecordatorioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	reminder, err := h.reminderRepo.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Recordatorio no encontrado")
			return
		}
		apierrors.InternalError(c, "Error actualizando recordatorio")
		return
	}
	if reminder.UsuarioID != userID {
		apierrors.Forbidden(c, "")
		return
	}

	reminder.Mensaje = req.Mensaje
	reminder.FechaHora = req.FechaHora

	if err := h.reminderRepo.Update(reminder); err != nil {
		apierrors.InternalError(c, "Error actualizando recordatorio")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recordatorio actualizado",
	})
}

// DeleteRecordatorio removes a recordatorio; an absent id still reports
// success
func (h *ReminderHandler) DeleteRecordatorio(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	reminderID, ok := parseIDParam(c)
	if !ok {
		return
	}

	reminder, err := h.reminderRepo.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Recordatorio eliminado"})
			return
		}
		apierrors.InternalError(c, "Error eliminando recordatorio")
		return
	}
	if reminder.UsuarioID != userID {
		apierrors.Forbidden(c, "")
		return
	}

	if err := h.reminderRepo.Delete(reminderID); err != nil {
		apierrors.InternalError(c, "Error eliminando recordatorio")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recordatorio eliminado",
	})
}
