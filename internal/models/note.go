package models

import "time"

type Note struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Titulo     string    `gorm:"type:varchar(255);not null" json:"titulo"`
	Contenido  string    `gorm:"type:text" json:"contenido"`
	ColorFondo string    `gorm:"type:varchar(20)" json:"color_fondo"`
	UsuarioID  uint64    `gorm:"not null;index" json:"usuario_id"`
	CreadoEn   time.Time `gorm:"autoCreateTime;index" json:"creado_en"`

	// Relations
	Usuario User `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Note) TableName() string {
	return "notas"
}
