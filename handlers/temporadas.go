// handlers/temporadas.go - Season registry HTTP handlers
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/utils"
)

type temporadaRequest struct {
	Nombre      string `json:"nombre"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Activa      bool   `json:"activa"`
}

func (r *temporadaRequest) fechas() (time.Time, time.Time, error) {
	inicio, err := utils.ParseFecha(r.FechaInicio)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fin, err := utils.ParseFecha(r.FechaFin)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fin, nil
}

// GetTemporadas returns every season, newest first
// GET /api/temporadas
func GetTemporadas(c *fiber.Ctx) error {
	temporadas, err := temporadaService.ListTemporadas()
	if err != nil {
		return utils.Internal(c, "Error al obtener temporadas", err)
	}
	return c.JSON(temporadas)
}

// GetTemporada returns a single season by ID
// GET /api/temporadas/:id
func GetTemporada(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	temporada, err := temporadaService.GetTemporada(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Temporada no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener la temporada", err)
	}
	return c.JSON(temporada)
}

// CreateTemporada creates a season; activa=true deactivates all others
// POST /api/temporadas
func CreateTemporada(c *fiber.Ctx) error {
	var req temporadaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear la temporada", err)
	}
	if req.Nombre == "" {
		return utils.BadRequest(c, "Error al crear la temporada", errors.New("el nombre es obligatorio"))
	}
	inicio, fin, err := req.fechas()
	if err != nil {
		return utils.BadRequest(c, "Error al crear la temporada", err)
	}

	temporada, err := temporadaService.CreateTemporada(req.Nombre, inicio, fin, req.Activa)
	if err != nil {
		return utils.BadRequest(c, "Error al crear la temporada", err)
	}
	return c.Status(fiber.StatusCreated).JSON(temporada)
}

// UpdateTemporada overwrites a season; activa=true deactivates the rest
// PUT /api/temporadas/:id
func UpdateTemporada(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	var req temporadaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar la temporada", err)
	}
	if req.Nombre == "" {
		return utils.BadRequest(c, "Error al actualizar la temporada", errors.New("el nombre es obligatorio"))
	}
	inicio, fin, err := req.fechas()
	if err != nil {
		return utils.BadRequest(c, "Error al actualizar la temporada", err)
	}

	temporada, err := temporadaService.UpdateTemporada(id, req.Nombre, inicio, fin, req.Activa)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Temporada no encontrada")
	}
	if err != nil {
		return utils.BadRequest(c, "Error al actualizar la temporada", err)
	}
	return c.JSON(temporada)
}

// DeleteTemporada removes a season. Teams referencing it are left as-is.
// DELETE /api/temporadas/:id
func DeleteTemporada(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	err = temporadaService.DeleteTemporada(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Temporada no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al eliminar la temporada", err)
	}
	return c.JSON(fiber.Map{"mensaje": "Temporada eliminada correctamente"})
}
