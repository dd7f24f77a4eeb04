// services/usuario_service.go - User registry business logic
package services

import (
	"errors"

	"gorm.io/gorm"

	"clubsanagustin/models"
)

// ErrNombreUsuarioEnUso marks a username collision detected by the
// pre-query. The check races against concurrent writers; there is no
// storage-level unique constraint backing it.
var ErrNombreUsuarioEnUso = errors.New("el nombre de usuario ya está en uso")

type UsuarioService struct {
	db *gorm.DB
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

func (s *UsuarioService) ListUsuarios() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := s.db.Preload("Equipo").Order("nombre_usuario ASC").Find(&usuarios).Error
	return usuarios, err
}

func (s *UsuarioService) GetUsuario(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.Preload("Equipo").First(&usuario, id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) PorNombre(nombreUsuario string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.Preload("Equipo").
		Where("nombre_usuario = ?", nombreUsuario).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) CreateUsuario(nombreUsuario, rol string, equipoID *uint) (*models.Usuario, error) {
	var existentes int64
	if err := s.db.Model(&models.Usuario{}).
		Where("nombre_usuario = ?", nombreUsuario).
		Count(&existentes).Error; err != nil {
		return nil, err
	}
	if existentes > 0 {
		return nil, ErrNombreUsuarioEnUso
	}

	if rol == "" {
		rol = models.RolEntrenador
	}

	usuario := &models.Usuario{
		NombreUsuario: nombreUsuario,
		Rol:           rol,
		EquipoID:      equipoID,
	}
	if err := s.db.Create(usuario).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

// UpdateUsuario overwrites a user's fields, re-running the username
// pre-check against everyone except the user itself.
func (s *UsuarioService) UpdateUsuario(id uint, nombreUsuario, rol string, equipoID *uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		return nil, err
	}

	if nombreUsuario != "" {
		var existentes int64
		if err := s.db.Model(&models.Usuario{}).
			Where("nombre_usuario = ? AND id <> ?", nombreUsuario, id).
			Count(&existentes).Error; err != nil {
			return nil, err
		}
		if existentes > 0 {
			return nil, ErrNombreUsuarioEnUso
		}
		usuario.NombreUsuario = nombreUsuario
	}
	if rol != "" {
		usuario.Rol = rol
	}
	if equipoID != nil {
		usuario.EquipoID = equipoID
	}

	if err := s.db.Save(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (s *UsuarioService) DeleteUsuario(id uint) error {
	res := s.db.Delete(&models.Usuario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
