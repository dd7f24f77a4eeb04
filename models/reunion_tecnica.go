// models/reunion_tecnica.go
package models

import "time"

// ReunionTecnica is the record of a coaching-staff meeting, with the
// participating users and the teams discussed.
type ReunionTecnica struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Fecha               time.Time `json:"fecha" gorm:"not null;index"`
	Participantes       []Usuario `json:"participantes" gorm:"many2many:reunion_participantes"`
	Acta                string    `json:"acta" gorm:"type:text;not null"`
	Acuerdos            string    `json:"acuerdos" gorm:"type:text"`
	EquiposInvolucrados []Equipo  `json:"equiposInvolucrados" gorm:"many2many:reunion_equipos"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (ReunionTecnica) TableName() string {
	return "reuniones_tecnicas"
}
