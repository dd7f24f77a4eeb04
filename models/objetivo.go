// models/objetivo.go
package models

import "time"

const (
	TipoCuantitativo = "Cuantitativo"
	TipoCualitativo  = "Cualitativo"
)

const (
	EstadoPendiente  = "Pendiente"
	EstadoEnProgreso = "EnProgreso"
	EstadoCumplido   = "Cumplido"
	EstadoNoCumplido = "NoCumplido"
)

var (
	TiposObjetivo   = []string{TipoCuantitativo, TipoCualitativo}
	EstadosObjetivo = []string{EstadoPendiente, EstadoEnProgreso, EstadoCumplido, EstadoNoCumplido}
)

func TipoObjetivoValido(tipo string) bool {
	return tipo == TipoCuantitativo || tipo == TipoCualitativo
}

func EstadoObjetivoValido(estado string) bool {
	for _, e := range EstadosObjetivo {
		if e == estado {
			return true
		}
	}
	return false
}

// Objetivo is a team's goal for one season. The status may go from any
// value to any other; there is no transition graph. fechaActualizacion
// is refreshed on every mutation.
type Objetivo struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	EquipoID           uint       `json:"equipo" gorm:"not null;index"`
	Equipo             *Equipo    `json:"equipoDatos,omitempty" gorm:"foreignKey:EquipoID"`
	TemporadaID        uint       `json:"temporada" gorm:"not null;index"`
	Temporada          *Temporada `json:"temporadaDatos,omitempty" gorm:"foreignKey:TemporadaID"`
	Descripcion        string     `json:"descripcion" gorm:"type:text;not null"`
	Tipo               string     `json:"tipo" gorm:"not null;size:20"`
	Estado             string     `json:"estado" gorm:"not null;size:20;default:Pendiente"`
	FechaCreacion      time.Time  `json:"fechaCreacion"`
	FechaActualizacion time.Time  `json:"fechaActualizacion"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (Objetivo) TableName() string {
	return "objetivos"
}
