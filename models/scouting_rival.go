// models/scouting_rival.go
package models

import "time"

// ScoutingRival is an observation of a rival club's player filed by one
// of our teams. enSeguimiento flags the players still being watched
// matchday after matchday.
type ScoutingRival struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	NombreJugador      string    `json:"nombreJugador" gorm:"not null;size:150"`
	Dorsal             int       `json:"dorsal" gorm:"not null"`
	EquipoRival        string    `json:"equipoRival" gorm:"not null;size:100"`
	Posicion           string    `json:"posicion" gorm:"not null;size:30"`
	ValoracionGeneral  int       `json:"valoracionGeneral" gorm:"not null"`
	Observaciones      string    `json:"observaciones" gorm:"type:text"`
	EnSeguimiento      bool      `json:"enSeguimiento" gorm:"default:false;index"`
	FechaObservacion   time.Time `json:"fechaObservacion" gorm:"index"`
	EquipoObservadorID uint      `json:"equipoObservador" gorm:"not null;index"`
	EquipoObservador   *Equipo   `json:"equipoObservadorDatos,omitempty" gorm:"foreignKey:EquipoObservadorID"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (ScoutingRival) TableName() string {
	return "scouting_rivales"
}
