// services/temporada_service.go - Season registry business logic
package services

import (
	"time"

	"gorm.io/gorm"

	"clubsanagustin/models"
)

type TemporadaService struct {
	db *gorm.DB
}

func NewTemporadaService(db *gorm.DB) *TemporadaService {
	return &TemporadaService{db: db}
}

// ListTemporadas returns every season, newest first.
func (s *TemporadaService) ListTemporadas() ([]models.Temporada, error) {
	var temporadas []models.Temporada
	err := s.db.Order("fecha_inicio DESC").Find(&temporadas).Error
	return temporadas, err
}

func (s *TemporadaService) GetTemporada(id uint) (*models.Temporada, error) {
	var temporada models.Temporada
	if err := s.db.First(&temporada, id).Error; err != nil {
		return nil, err
	}
	return &temporada, nil
}

// CreateTemporada persists a new season. When activa is set, every other
// season gets deactivated first. The two writes are deliberately separate
// statements, not a transaction: a crash in between can leave zero or
// several active seasons, which the caller accepts as best-effort.
func (s *TemporadaService) CreateTemporada(nombre string, inicio, fin time.Time, activa bool) (*models.Temporada, error) {
	if activa {
		if err := s.db.Model(&models.Temporada{}).
			Where("activa = ?", true).
			Update("activa", false).Error; err != nil {
			return nil, err
		}
	}

	temporada := &models.Temporada{
		Nombre:      nombre,
		FechaInicio: inicio,
		FechaFin:    fin,
		Activa:      activa,
	}
	if err := s.db.Create(temporada).Error; err != nil {
		return nil, err
	}
	return temporada, nil
}

// UpdateTemporada overwrites a season's fields. Activating a season
// deactivates all the others, excluding the season itself.
func (s *TemporadaService) UpdateTemporada(id uint, nombre string, inicio, fin time.Time, activa bool) (*models.Temporada, error) {
	var temporada models.Temporada
	if err := s.db.First(&temporada, id).Error; err != nil {
		return nil, err
	}

	if activa {
		if err := s.db.Model(&models.Temporada{}).
			Where("id <> ? AND activa = ?", id, true).
			Update("activa", false).Error; err != nil {
			return nil, err
		}
	}

	temporada.Nombre = nombre
	temporada.FechaInicio = inicio
	temporada.FechaFin = fin
	temporada.Activa = activa
	if err := s.db.Model(&temporada).Select("nombre", "fecha_inicio", "fecha_fin", "activa").
		Updates(&temporada).Error; err != nil {
		return nil, err
	}
	return &temporada, nil
}

func (s *TemporadaService) DeleteTemporada(id uint) error {
	res := s.db.Delete(&models.Temporada{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
