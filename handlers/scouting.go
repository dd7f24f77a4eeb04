// handlers/scouting.go - Opponent scouting HTTP handlers
package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/database"
	"clubsanagustin/models"
	"clubsanagustin/utils"
)

// GetScouting returns every scouting record, newest observation first
// GET /api/scouting
func GetScouting(c *fiber.Ctx) error {
	db := database.GetDB()

	var registros []models.ScoutingRival
	if err := db.Preload("EquipoObservador").
		Order("fecha_observacion DESC").
		Find(&registros).Error; err != nil {
		return utils.Internal(c, "Error al obtener registros de scouting", err)
	}
	return c.JSON(registros)
}

// GetScoutingPorEquipo returns the records filed by one observing team
// GET /api/scouting/equipo/:equipoId
func GetScoutingPorEquipo(c *fiber.Ctx) error {
	equipoID, err := parseID(c, "equipoId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var registros []models.ScoutingRival
	if err := db.Where("equipo_observador_id = ?", equipoID).
		Order("fecha_observacion DESC").
		Find(&registros).Error; err != nil {
		return utils.Internal(c, "Error al obtener registros de scouting del equipo", err)
	}
	return c.JSON(registros)
}

// GetScoutingEnSeguimiento returns the rivals under continued
// observation, best rated first
// GET /api/scouting/seguimiento
func GetScoutingEnSeguimiento(c *fiber.Ctx) error {
	db := database.GetDB()

	var registros []models.ScoutingRival
	if err := db.Preload("EquipoObservador").
		Where("en_seguimiento = ?", true).
		Order("valoracion_general DESC").
		Find(&registros).Error; err != nil {
		return utils.Internal(c, "Error al obtener jugadores en seguimiento", err)
	}
	return c.JSON(registros)
}

type createScoutingRequest struct {
	NombreJugador     string `json:"nombreJugador"`
	Dorsal            int    `json:"dorsal"`
	EquipoRival       string `json:"equipoRival"`
	Posicion          string `json:"posicion"`
	ValoracionGeneral int    `json:"valoracionGeneral"`
	Observaciones     string `json:"observaciones"`
	EnSeguimiento     bool   `json:"enSeguimiento"`
	FechaObservacion  string `json:"fechaObservacion"`
	EquipoObservador  uint   `json:"equipoObservador"`
}

// CreateScouting files an observation of a rival player
// POST /api/scouting
func CreateScouting(c *fiber.Ctx) error {
	var req createScoutingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear el registro de scouting", err)
	}
	if req.NombreJugador == "" || req.EquipoRival == "" {
		return utils.BadRequest(c, "Error al crear el registro de scouting",
			errors.New("nombreJugador y equipoRival son obligatorios"))
	}
	if !models.PosicionValida(req.Posicion) {
		return utils.BadRequest(c, "Error al crear el registro de scouting",
			fmt.Errorf("posición inválida: %q", req.Posicion))
	}
	if !models.ValoracionEnRango(req.ValoracionGeneral) {
		return utils.BadRequest(c, "Error al crear el registro de scouting",
			fmt.Errorf("valoracionGeneral fuera de rango: %d", req.ValoracionGeneral))
	}
	if req.EquipoObservador == 0 {
		return utils.BadRequest(c, "Error al crear el registro de scouting",
			errors.New("el equipo observador es obligatorio"))
	}

	observacion := time.Now()
	if req.FechaObservacion != "" {
		parsed, err := utils.ParseFecha(req.FechaObservacion)
		if err != nil {
			return utils.BadRequest(c, "Error al crear el registro de scouting", err)
		}
		observacion = parsed
	}

	registro := models.ScoutingRival{
		NombreJugador:      req.NombreJugador,
		Dorsal:             req.Dorsal,
		EquipoRival:        req.EquipoRival,
		Posicion:           req.Posicion,
		ValoracionGeneral:  req.ValoracionGeneral,
		Observaciones:      req.Observaciones,
		EnSeguimiento:      req.EnSeguimiento,
		FechaObservacion:   observacion,
		EquipoObservadorID: req.EquipoObservador,
	}

	db := database.GetDB()
	if err := db.Create(&registro).Error; err != nil {
		return utils.BadRequest(c, "Error al crear el registro de scouting", err)
	}
	return c.Status(fiber.StatusCreated).JSON(registro)
}

type updateScoutingRequest struct {
	NombreJugador     *string `json:"nombreJugador"`
	Dorsal            *int    `json:"dorsal"`
	EquipoRival       *string `json:"equipoRival"`
	Posicion          *string `json:"posicion"`
	ValoracionGeneral *int    `json:"valoracionGeneral"`
	Observaciones     *string `json:"observaciones"`
	EnSeguimiento     *bool   `json:"enSeguimiento"`
	FechaObservacion  *string `json:"fechaObservacion"`
	EquipoObservador  *uint   `json:"equipoObservador"`
}

// UpdateScouting overwrites the provided fields of a record
// PUT /api/scouting/:id
func UpdateScouting(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var registro models.ScoutingRival
	err = db.First(&registro, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Registro de scouting no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el registro de scouting", err)
	}

	var req updateScoutingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el registro de scouting", err)
	}

	if req.NombreJugador != nil {
		registro.NombreJugador = *req.NombreJugador
	}
	if req.Dorsal != nil {
		registro.Dorsal = *req.Dorsal
	}
	if req.EquipoRival != nil {
		registro.EquipoRival = *req.EquipoRival
	}
	if req.Posicion != nil {
		if !models.PosicionValida(*req.Posicion) {
			return utils.BadRequest(c, "Error al actualizar el registro de scouting",
				fmt.Errorf("posición inválida: %q", *req.Posicion))
		}
		registro.Posicion = *req.Posicion
	}
	if req.ValoracionGeneral != nil {
		if !models.ValoracionEnRango(*req.ValoracionGeneral) {
			return utils.BadRequest(c, "Error al actualizar el registro de scouting",
				fmt.Errorf("valoracionGeneral fuera de rango: %d", *req.ValoracionGeneral))
		}
		registro.ValoracionGeneral = *req.ValoracionGeneral
	}
	if req.Observaciones != nil {
		registro.Observaciones = *req.Observaciones
	}
	if req.EnSeguimiento != nil {
		registro.EnSeguimiento = *req.EnSeguimiento
	}
	if req.FechaObservacion != nil {
		parsed, err := utils.ParseFecha(*req.FechaObservacion)
		if err != nil {
			return utils.BadRequest(c, "Error al actualizar el registro de scouting", err)
		}
		registro.FechaObservacion = parsed
	}
	if req.EquipoObservador != nil {
		registro.EquipoObservadorID = *req.EquipoObservador
	}

	if err := db.Save(&registro).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el registro de scouting", err)
	}
	return c.JSON(registro)
}

type seguimientoRequest struct {
	EnSeguimiento *bool `json:"enSeguimiento"`
}

// UpdateSeguimiento flips only the follow-up flag
// PATCH /api/scouting/:id/seguimiento
func UpdateSeguimiento(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	var req seguimientoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el estado de seguimiento", err)
	}
	if req.EnSeguimiento == nil {
		return utils.BadRequest(c, "Error al actualizar el estado de seguimiento",
			errors.New("el campo enSeguimiento es obligatorio"))
	}

	db := database.GetDB()
	var registro models.ScoutingRival
	err = db.First(&registro, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Registro de scouting no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el estado de seguimiento", err)
	}

	if err := db.Model(&registro).Update("en_seguimiento", *req.EnSeguimiento).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el estado de seguimiento", err)
	}
	return c.JSON(registro)
}

// DeleteScouting removes a record
// DELETE /api/scouting/:id
func DeleteScouting(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.ScoutingRival{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar el registro de scouting", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Registro de scouting no encontrado")
	}
	return c.JSON(fiber.Map{"mensaje": "Registro de scouting eliminado correctamente"})
}
