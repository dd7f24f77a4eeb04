// models/valoracion.go
package models

import "time"

// Allowed range for every rating axis.
const (
	ValoracionMinima = 1
	ValoracionMaxima = 5
)

func ValoracionEnRango(v int) bool {
	return v >= ValoracionMinima && v <= ValoracionMaxima
}

// Valoracion is a point-in-time evaluation of a player on four axes.
// All four are required on create; updates may be partial.
type Valoracion struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	JugadorID             uint      `json:"jugador" gorm:"not null;index"`
	Jugador               *Jugador  `json:"jugadorDatos,omitempty" gorm:"foreignKey:JugadorID"`
	Fecha                 time.Time `json:"fecha" gorm:"not null;index"`
	ValoracionTecnica     int       `json:"valoracionTecnica" gorm:"not null"`
	ValoracionTactica     int       `json:"valoracionTactica" gorm:"not null"`
	ValoracionFisica      int       `json:"valoracionFisica" gorm:"not null"`
	ValoracionActitudinal int       `json:"valoracionActitudinal" gorm:"not null"`
	Comentarios           string    `json:"comentarios" gorm:"type:text"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (Valoracion) TableName() string {
	return "valoraciones"
}
