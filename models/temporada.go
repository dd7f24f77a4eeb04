// models/temporada.go
package models

import "time"

// Temporada groups teams and objectives within one sporting year. At
// most one season is active at a time; TemporadaService enforces the
// exclusivity on create and update.
type Temporada struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"uniqueIndex;not null;size:100"`
	FechaInicio time.Time `json:"fechaInicio" gorm:"not null;index"`
	FechaFin    time.Time `json:"fechaFin" gorm:"not null"`
	Activa      bool      `json:"activa" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Temporada) TableName() string {
	return "temporadas"
}
