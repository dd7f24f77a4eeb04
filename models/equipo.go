// models/equipo.go
package models

import "time"

// Age categories, youngest to oldest.
const (
	CategoriaPrebenjamin = "Prebenjamín"
	CategoriaBenjamin    = "Benjamín"
	CategoriaAlevin      = "Alevín"
	CategoriaInfantil    = "Infantil"
	CategoriaCadete      = "Cadete"
	CategoriaJuvenil     = "Juvenil"
	CategoriaRegional    = "Regional"
)

var Categorias = []string{
	CategoriaPrebenjamin,
	CategoriaBenjamin,
	CategoriaAlevin,
	CategoriaInfantil,
	CategoriaCadete,
	CategoriaJuvenil,
	CategoriaRegional,
}

// CategoriaValida reports whether the category is one of the allowed set.
func CategoriaValida(categoria string) bool {
	for _, c := range Categorias {
		if c == categoria {
			return true
		}
	}
	return false
}

// LimitePorCategoria returns the default roster cap: 15 for the two
// youngest categories, 18 for the rest. Applied only when the client
// sends no explicit cap.
func LimitePorCategoria(categoria string) int {
	if categoria == CategoriaPrebenjamin || categoria == CategoriaBenjamin {
		return 15
	}
	return 18
}

type Equipo struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Nombre          string     `json:"nombre" gorm:"not null;size:100"`
	Categoria       string     `json:"categoria" gorm:"not null;size:30"`
	TemporadaID     uint       `json:"temporada" gorm:"not null;index"`
	Temporada       *Temporada `json:"temporadaDatos,omitempty" gorm:"foreignKey:TemporadaID"`
	EntrenadorID    *uint      `json:"entrenador,omitempty" gorm:"index"`
	Entrenador      *Usuario   `json:"entrenadorDatos,omitempty" gorm:"foreignKey:EntrenadorID"`
	LimiteJugadores int        `json:"limiteJugadores"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Equipo) TableName() string {
	return "equipos"
}
