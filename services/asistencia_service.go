// services/asistencia_service.go - Attendance ledger business logic
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"clubsanagustin/models"
	"clubsanagustin/utils"
)

// ErrAsistenciaDuplicada marks an attempt to record attendance twice for
// the same player and date.
var ErrAsistenciaDuplicada = errors.New("ya existe un registro de asistencia para este jugador en esta fecha")

// RegistroLote is one entry of a batch submission for a training session.
type RegistroLote struct {
	Jugador        uint   `json:"jugador"`
	Asistio        bool   `json:"asistio"`
	MotivoAusencia string `json:"motivoAusencia"`
	Observaciones  string `json:"observaciones"`
}

type AsistenciaService struct {
	db *gorm.DB
}

func NewAsistenciaService(db *gorm.DB) *AsistenciaService {
	return &AsistenciaService{db: db}
}

func (s *AsistenciaService) ListAsistencias() ([]models.Asistencia, error) {
	var asistencias []models.Asistencia
	err := s.db.Preload("Jugador").Order("fecha DESC").Find(&asistencias).Error
	return asistencias, err
}

func (s *AsistenciaService) PorJugador(jugadorID uint) ([]models.Asistencia, error) {
	var asistencias []models.Asistencia
	err := s.db.Where("jugador_id = ?", jugadorID).
		Order("fecha DESC").
		Find(&asistencias).Error
	return asistencias, err
}

// PorFecha returns the records of one calendar day, bounded between
// 00:00:00.000 and 23:59:59.999.
func (s *AsistenciaService) PorFecha(dia time.Time) ([]models.Asistencia, error) {
	inicio, fin := utils.RangoDia(dia)

	var asistencias []models.Asistencia
	err := s.db.Preload("Jugador").
		Where("fecha BETWEEN ? AND ?", inicio, fin).
		Find(&asistencias).Error
	return asistencias, err
}

// PorEquipo resolves the team's player-id set first, then filters
// attendance on membership in that set.
func (s *AsistenciaService) PorEquipo(equipoID uint) ([]models.Asistencia, error) {
	var jugadorIDs []uint
	if err := s.db.Model(&models.Jugador{}).
		Where("equipo_id = ?", equipoID).
		Pluck("id", &jugadorIDs).Error; err != nil {
		return nil, err
	}
	if len(jugadorIDs) == 0 {
		return []models.Asistencia{}, nil
	}

	var asistencias []models.Asistencia
	err := s.db.Preload("Jugador").
		Where("jugador_id IN ?", jugadorIDs).
		Order("fecha DESC").
		Find(&asistencias).Error
	return asistencias, err
}

// Registrar inserts a single attendance record, rejecting duplicates for
// the (player, date) pair before touching storage. The composite unique
// index stays as a backstop against concurrent writers.
func (s *AsistenciaService) Registrar(jugadorID uint, fecha time.Time, asistio bool, motivo, observaciones string) (*models.Asistencia, error) {
	var existentes int64
	if err := s.db.Model(&models.Asistencia{}).
		Where("jugador_id = ? AND fecha = ?", jugadorID, fecha).
		Count(&existentes).Error; err != nil {
		return nil, err
	}
	if existentes > 0 {
		return nil, ErrAsistenciaDuplicada
	}

	asistencia := &models.Asistencia{
		JugadorID:      jugadorID,
		Fecha:          fecha,
		Asistio:        asistio,
		MotivoAusencia: motivo,
		Observaciones:  observaciones,
	}
	if err := s.db.Create(asistencia).Error; err != nil {
		return nil, err
	}
	return asistencia, nil
}

// RegistrarLote upserts one record per entry for a single session date:
// existing (player, date) rows get their mutable fields overwritten, the
// rest are inserted. Entries are processed sequentially; a failure leaves
// the earlier entries committed.
func (s *AsistenciaService) RegistrarLote(fecha time.Time, registros []RegistroLote) ([]models.Asistencia, error) {
	resultados := make([]models.Asistencia, 0, len(registros))

	for _, registro := range registros {
		var existente models.Asistencia
		err := s.db.Where("jugador_id = ? AND fecha = ?", registro.Jugador, fecha).
			First(&existente).Error

		switch {
		case err == nil:
			existente.Asistio = registro.Asistio
			existente.MotivoAusencia = registro.MotivoAusencia
			existente.Observaciones = registro.Observaciones
			if err := s.db.Save(&existente).Error; err != nil {
				return resultados, err
			}
			resultados = append(resultados, existente)

		case errors.Is(err, gorm.ErrRecordNotFound):
			nueva := models.Asistencia{
				JugadorID:      registro.Jugador,
				Fecha:          fecha,
				Asistio:        registro.Asistio,
				MotivoAusencia: registro.MotivoAusencia,
				Observaciones:  registro.Observaciones,
			}
			if err := s.db.Create(&nueva).Error; err != nil {
				return resultados, err
			}
			resultados = append(resultados, nueva)

		default:
			return resultados, err
		}
	}

	return resultados, nil
}

// Actualizar overwrites the mutable fields of a record; player and date
// are fixed once created.
func (s *AsistenciaService) Actualizar(id uint, asistio bool, motivo, observaciones string) (*models.Asistencia, error) {
	var asistencia models.Asistencia
	if err := s.db.First(&asistencia, id).Error; err != nil {
		return nil, err
	}

	asistencia.Asistio = asistio
	asistencia.MotivoAusencia = motivo
	asistencia.Observaciones = observaciones
	if err := s.db.Save(&asistencia).Error; err != nil {
		return nil, err
	}
	return &asistencia, nil
}

func (s *AsistenciaService) Eliminar(id uint) error {
	res := s.db.Delete(&models.Asistencia{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
