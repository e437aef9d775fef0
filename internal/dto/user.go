package dto

import (
	"github.com/febarreras/agenda-escolar-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID     uint64         `json:"id"`
	Nombre string         `json:"nombre"`
	Rol    models.UserRol `json:"rol"`
}

// LoginResponse is the body returned by a successful login
type LoginResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:     user.ID,
		Nombre: user.Nombre,
		Rol:    user.Rol,
	}
}
