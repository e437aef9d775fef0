package models

// Reminder keeps FechaHora as the ISO-8601 string the datetime picker sends,
// same reasoning as Task.Fecha.
type Reminder struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Mensaje   string `gorm:"type:varchar(255);not null" json:"mensaje"`
	FechaHora string `gorm:"type:varchar(30);index" json:"fecha_hora"`
	UsuarioID uint64 `gorm:"not null;index" json:"usuario_id"`

	// Relations
	Usuario User `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Reminder) TableName() string {
	return "recordatorios"
}
