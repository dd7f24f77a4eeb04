// handlers/objetivos.go - Objectives tracker HTTP handlers
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

// GetObjetivos returns every objective, newest first
// GET /api/objetivos
func GetObjetivos(c *fiber.Ctx) error {
	db := database.GetDB()

	var objetivos []models.Objetivo
	if err := db.Preload("Equipo").Preload("Temporada").
		Order("fecha_creacion DESC").
		Find(&objetivos).Error; err != nil {
		return utils.Internal(c, "Error al obtener objetivos", err)
	}
	return c.JSON(objetivos)
}

// GetObjetivosPorEquipo returns one team's objectives sorted by status
// then creation date
// GET /api/objetivos/equipo/:equipoId
func GetObjetivosPorEquipo(c *fiber.Ctx) error {
	equipoID, err := parseID(c, "equipoId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var objetivos []models.Objetivo
	if err := db.Preload("Temporada").
		Where("equipo_id = ?", equipoID).
		Order("estado ASC, fecha_creacion DESC").
		Find(&objetivos).Error; err != nil {
		return utils.Internal(c, "Error al obtener objetivos del equipo", err)
	}
	return c.JSON(objetivos)
}

// GetObjetivosPorTemporada returns one season's objectives sorted by
// status then creation date
// GET /api/objetivos/temporada/:temporadaId
func GetObjetivosPorTemporada(c *fiber.Ctx) error {
	temporadaID, err := parseID(c, "temporadaId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var objetivos []models.Objetivo
	if err := db.Preload("Equipo").
		Where("temporada_id = ?", temporadaID).
		Order("estado ASC, fecha_creacion DESC").
		Find(&objetivos).Error; err != nil {
		return utils.Internal(c, "Error al obtener objetivos de la temporada", err)
	}
	return c.JSON(objetivos)
}

type createObjetivoRequest struct {
	Equipo      uint   `json:"equipo"`
	Temporada   uint   `json:"temporada"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
	Estado      string `json:"estado"`
}

// CreateObjetivo creates an objective, stamping both tracking dates
// POST /api/objetivos
func CreateObjetivo(c *fiber.Ctx) error {
	var req createObjetivoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear el objetivo", err)
	}
	if req.Equipo == 0 || req.Temporada == 0 {
		return utils.BadRequest(c, "Error al crear el objetivo",
			errors.New("equipo y temporada son obligatorios"))
	}
	if req.Descripcion == "" {
		return utils.BadRequest(c, "Error al crear el objetivo", errors.New("la descripción es obligatoria"))
	}
	if !models.TipoObjetivoValido(req.Tipo) {
		return utils.BadRequest(c, "Error al crear el objetivo",
			fmt.Errorf("tipo inválido: %q", req.Tipo))
	}
	if req.Estado == "" {
		req.Estado = models.EstadoPendiente
	}
	if !models.EstadoObjetivoValido(req.Estado) {
		return utils.BadRequest(c, "Error al crear el objetivo",
			fmt.Errorf("estado inválido: %q", req.Estado))
	}

	ahora := time.Now()
	objetivo := models.Objetivo{
		EquipoID:           req.Equipo,
		TemporadaID:        req.Temporada,
		Descripcion:        req.Descripcion,
		Tipo:               req.Tipo,
		Estado:             req.Estado,
		FechaCreacion:      ahora,
		FechaActualizacion: ahora,
	}

	db := database.GetDB()
	if err := db.Create(&objetivo).Error; err != nil {
		return utils.BadRequest(c, "Error al crear el objetivo", err)
	}
	return c.Status(fiber.StatusCreated).JSON(objetivo)
}

type updateObjetivoRequest struct {
	Descripcion *string `json:"descripcion"`
	Tipo        *string `json:"tipo"`
	Estado      *string `json:"estado"`
}

// UpdateObjetivo overwrites the provided fields and refreshes
// fechaActualizacion
// PUT /api/objetivos/:id
func UpdateObjetivo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var objetivo models.Objetivo
	err = db.First(&objetivo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Objetivo no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el objetivo", err)
	}

	var req updateObjetivoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el objetivo", err)
	}

	if req.Descripcion != nil {
		objetivo.Descripcion = *req.Descripcion
	}
	if req.Tipo != nil {
		if !models.TipoObjetivoValido(*req.Tipo) {
			return utils.BadRequest(c, "Error al actualizar el objetivo",
				fmt.Errorf("tipo inválido: %q", *req.Tipo))
		}
		objetivo.Tipo = *req.Tipo
	}
	if req.Estado != nil {
		if !models.EstadoObjetivoValido(*req.Estado) {
			return utils.BadRequest(c, "Error al actualizar el objetivo",
				fmt.Errorf("estado inválido: %q", *req.Estado))
		}
		// Any status may follow any other; there is no transition graph.
		objetivo.Estado = *req.Estado
	}
	objetivo.FechaActualizacion = time.Now()

	if err := db.Save(&objetivo).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el objetivo", err)
	}
	return c.JSON(objetivo)
}

type estadoObjetivoRequest struct {
	Estado string `json:"estado"`
}

// UpdateEstadoObjetivo changes only the status and refreshes
// fechaActualizacion
// PATCH /api/objetivos/:id/estado
func UpdateEstadoObjetivo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	var req estadoObjetivoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el estado del objetivo", err)
	}
	if !models.EstadoObjetivoValido(req.Estado) {
		return utils.BadRequest(c, "Error al actualizar el estado del objetivo",
			fmt.Errorf("estado inválido: %q", req.Estado))
	}

	db := database.GetDB()
	var objetivo models.Objetivo
	err = db.First(&objetivo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Objetivo no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el estado del objetivo", err)
	}

	objetivo.Estado = req.Estado
	objetivo.FechaActualizacion = time.Now()
	if err := db.Model(&objetivo).
		Select("estado", "fecha_actualizacion").
		Updates(&objetivo).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el estado del objetivo", err)
	}
	return c.JSON(objetivo)
}

// DeleteObjetivo removes an objective
// DELETE /api/objetivos/:id
func DeleteObjetivo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.Objetivo{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar el objetivo", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Objetivo no encontrado")
	}
	return c.JSON(fiber.Map{"mensaje": "Objetivo eliminado correctamente"})
}
