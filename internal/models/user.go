package models

type UserRol string

const (
	RolEstudiante UserRol = "estudiante"
	RolDocente    UserRol = "docente"
)

type User struct {
	ID           uint64  `gorm:"primarykey" json:"id"`
	Nombre       string  `gorm:"type:varchar(100);not null" json:"nombre"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Rol          UserRol `gorm:"type:varchar(20);not null;default:'estudiante'" json:"rol"`

	// Relations
	Tareas        []Task     `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Notas         []Note     `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Recordatorios []Reminder `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}
