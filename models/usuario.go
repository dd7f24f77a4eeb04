// models/usuario.go
package models

import "time"

const (
	RolEntrenador    = "Entrenador"
	RolCoordinador   = "Coordinador"
	RolAdministrador = "Administrador"
)

var Roles = []string{RolEntrenador, RolCoordinador, RolAdministrador}

func RolValido(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// Usuario is an account on the club's panel. nombreUsuario uniqueness
// is checked in UsuarioService before writing; there is no storage-level
// unique constraint.
type Usuario struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	NombreUsuario string    `json:"nombreUsuario" gorm:"not null;index;size:60"`
	Rol           string    `json:"rol" gorm:"not null;size:30;default:Entrenador"`
	EquipoID      *uint     `json:"equipo,omitempty" gorm:"index"`
	Equipo        *Equipo   `json:"equipoDatos,omitempty" gorm:"foreignKey:EquipoID"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
