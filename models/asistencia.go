// models/asistencia.go
package models

import "time"

// Asistencia records whether a player showed up to a training session.
// The composite (jugador, fecha) index blocks duplicates at the storage
// level; AsistenciaService also pre-checks before inserting so the API
// can answer a readable 400.
type Asistencia struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	JugadorID      uint      `json:"jugador" gorm:"not null;uniqueIndex:idx_asistencias_jugador_fecha"`
	Jugador        *Jugador  `json:"jugadorDatos,omitempty" gorm:"foreignKey:JugadorID"`
	Fecha          time.Time `json:"fecha" gorm:"not null;uniqueIndex:idx_asistencias_jugador_fecha"`
	Asistio        bool      `json:"asistio" gorm:"not null;default:true"`
	MotivoAusencia string    `json:"motivoAusencia"`
	Observaciones  string    `json:"observaciones" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Asistencia) TableName() string {
	return "asistencias"
}
