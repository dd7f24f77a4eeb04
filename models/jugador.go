// models/jugador.go
package models

import "time"

const (
	PosicionPortero        = "Portero"
	PosicionDefensa        = "Defensa"
	PosicionCentrocampista = "Centrocampista"
	PosicionDelantero      = "Delantero"
)

var Posiciones = []string{
	PosicionPortero,
	PosicionDefensa,
	PosicionCentrocampista,
	PosicionDelantero,
}

func PosicionValida(posicion string) bool {
	for _, p := range Posiciones {
		if p == posicion {
			return true
		}
	}
	return false
}

type Jugador struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Nombre          string    `json:"nombre" gorm:"not null;size:100"`
	Apellidos       string    `json:"apellidos" gorm:"not null;size:150"`
	FechaNacimiento time.Time `json:"fechaNacimiento" gorm:"not null"`
	Posicion        string    `json:"posicion" gorm:"not null;size:30"`
	EquipoID        uint      `json:"equipo" gorm:"not null;index"`
	Equipo          *Equipo   `json:"equipoDatos,omitempty" gorm:"foreignKey:EquipoID"`
	Dorsal          int       `json:"dorsal"`
	Observaciones   string    `json:"observaciones" gorm:"type:text"`
	// Foto holds a URL or path to the image; the upload itself is out of
	// this API's scope.
	Foto                 string              `json:"foto"`
	TemporadasAnteriores []TemporadaAnterior `json:"temporadasAnteriores" gorm:"foreignKey:JugadorID"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
}

func (Jugador) TableName() string {
	return "jugadores"
}

// TemporadaAnterior is one entry of a player's history: which team they
// played on during a past season. Insertion order is preserved by
// primary key.
type TemporadaAnterior struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	JugadorID   uint       `json:"-" gorm:"not null;index"`
	TemporadaID uint       `json:"temporada"`
	Temporada   *Temporada `json:"temporadaDatos,omitempty" gorm:"foreignKey:TemporadaID"`
	EquipoID    uint       `json:"equipo"`
	Equipo      *Equipo    `json:"equipoDatos,omitempty" gorm:"foreignKey:EquipoID"`
}

func (TemporadaAnterior) TableName() string {
	return "temporadas_anteriores"
}
