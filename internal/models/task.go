package models

type TaskTipo string

const (
	TipoPersonal TaskTipo = "personal"
	TipoGrupal   TaskTipo = "grupal"
)

type TaskEstatus string

const (
	EstatusPendiente  TaskEstatus = "pendiente"
	EstatusCompletada TaskEstatus = "completada"
)

// Task is a tarea on the agenda. Fecha holds an ISO-8601 date string so the
// wire format matches what the frontend sends; lexicographic order equals
// chronological order.
type Task struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	Titulo      string      `gorm:"type:varchar(255);not null" json:"titulo"`
	Descripcion string      `gorm:"type:text" json:"descripcion"`
	Fecha       string      `gorm:"type:varchar(30);index" json:"fecha"`
	Tipo        TaskTipo    `gorm:"type:varchar(20);not null;default:'personal'" json:"tipo"`
	Estatus     TaskEstatus `gorm:"type:varchar(20);not null;default:'pendiente'" json:"estatus"`
	UsuarioID   uint64      `gorm:"not null;index" json:"usuario_id"`

	// Relations
	Usuario User `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Task) TableName() string {
	return "tareas"
}
