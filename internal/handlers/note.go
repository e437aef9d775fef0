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

type NoteHandler struct {
	noteRepo repository.NoteRepository
}

func NewNoteHandler(noteRepo repository.NoteRepository) *NoteHandler {
	return &NoteHandler{
		noteRepo: noteRepo,
	}
}

// ListNotas returns the session user's notas, newest first
func (h *NoteHandler) ListNotas(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notes, err := h.noteRepo.ListForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Error obteniendo notas")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNota creates a nota owned by the session user
func (h *NoteHandler) CreateNota(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateNotaRequest struct {
		Titulo     string `json:"titulo" binding:"required"`
		Contenido  string `json:"contenido"`
		ColorFondo string `json:"color_fondo"`
	}

	var req CreateNotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note := models.Note{
		Titulo:     req.Titulo,
		Contenido:  req.Contenido,
		ColorFondo: req.ColorFondo,
		UsuarioID:  userID,
	}

	if err := h.noteRepo.Create(&note); err != nil {
		apierrors.InternalError(c, "Error creando nota")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": note.ID,
	})
}

// UpdateNota replaces titulo, contenido and color_fondo of a nota the
// session user owns
func (h *NoteHandler) UpdateNota(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateNotaRequest struct {
		Titulo     string `json:"titulo" binding:"required"`
		Contenido  string `json:"contenido"`
		ColorFondo string `json:"color_fondo"`
	}

	var req UpdateNotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Nota no encontrada")
			return
		}
		apierrors.InternalError(c, "Error actualizando nota")
		return
	}
	if note.UsuarioID != userID {
		apierrors.Forbidden(c, "")
		return
	}

	note.Titulo = req.Titulo
	note.Contenido = req.Contenido
	note.ColorFondo = req.ColorFondo

	if err := h.noteRepo.Update(note); err != nil {
		apierrors.InternalError(c, "Error actualizando nota")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nota actualizada",
	})
}

// DeleteNota removes a nota; an already-deleted id still reports success
func (h *NoteHandler) DeleteNota(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Nota eliminada"})
			return
		}
		apierrors.InternalError(c, "Error eliminando nota")
		return
	}
	if note.UsuarioID != userID {
		apierrors.Forbidden(c, "")
		return
	}

	if err := h.noteRepo.Delete(noteID); err != nil {
		apierrors.InternalError(c, "Error eliminando nota")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Nota eliminada",
	})
}
