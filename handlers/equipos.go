// handlers/equipos.go - Team registry HTTP handlers
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/database"
	"clubsanagustin/models"
	"clubsanagustin/utils"
)

// GetEquipos returns all teams with their season and coach resolved
// GET /api/equipos
func GetEquipos(c *fiber.Ctx) error {
	db := database.GetDB()

	var equipos []models.Equipo
	if err := db.Preload("Temporada").Preload("Entrenador").Find(&equipos).Error; err != nil {
		return utils.Internal(c, "Error al obtener equipos", err)
	}
	return c.JSON(equipos)
}

// GetEquipo returns a single team
// GET /api/equipos/:id
func GetEquipo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var equipo models.Equipo
	err = db.Preload("Temporada").Preload("Entrenador").First(&equipo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Equipo no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener el equipo", err)
	}
	return c.JSON(equipo)
}

// GetEquiposPorTemporada returns the teams registered for one season
// GET /api/equipos/temporada/:temporadaId
func GetEquiposPorTemporada(c *fiber.Ctx) error {
	temporadaID, err := parseID(c, "temporadaId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var equipos []models.Equipo
	if err := db.Preload("Entrenador").
		Where("temporada_id = ?", temporadaID).
		Find(&equipos).Error; err != nil {
		return utils.Internal(c, "Error al obtener equipos por temporada", err)
	}
	return c.JSON(equipos)
}

type createEquipoRequest struct {
	Nombre          string `json:"nombre"`
	Categoria       string `json:"categoria"`
	Temporada       uint   `json:"temporada"`
	Entrenador      *uint  `json:"entrenador"`
	LimiteJugadores *int   `json:"limiteJugadores"`
}

// CreateEquipo creates a team. The player cap defaults by category only
// when the caller omits it; an explicit value wins unvalidated, zero and
// negatives included. Season and coach references are stored without an
// existence check.
// POST /api/equipos
func CreateEquipo(c *fiber.Ctx) error {
	var req createEquipoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear el equipo", err)
	}
	if req.Nombre == "" {
		return utils.BadRequest(c, "Error al crear el equipo", errors.New("el nombre es obligatorio"))
	}
	if !models.CategoriaValida(req.Categoria) {
		return utils.BadRequest(c, "Error al crear el equipo",
			fmt.Errorf("categoría inválida: %q", req.Categoria))
	}
	if req.Temporada == 0 {
		return utils.BadRequest(c, "Error al crear el equipo", errors.New("la temporada es obligatoria"))
	}

	limite := models.LimitePorCategoria(req.Categoria)
	if req.LimiteJugadores != nil {
		limite = *req.LimiteJugadores
	}

	equipo := models.Equipo{
		Nombre:          req.Nombre,
		Categoria:       req.Categoria,
		TemporadaID:     req.Temporada,
		EntrenadorID:    req.Entrenador,
		LimiteJugadores: limite,
	}

	db := database.GetDB()
	if err := db.Create(&equipo).Error; err != nil {
		return utils.BadRequest(c, "Error al crear el equipo", err)
	}
	return c.Status(fiber.StatusCreated).JSON(equipo)
}

type updateEquipoRequest struct {
	Nombre          *string `json:"nombre"`
	Categoria       *string `json:"categoria"`
	Temporada       *uint   `json:"temporada"`
	Entrenador      *uint   `json:"entrenador"`
	LimiteJugadores *int    `json:"limiteJugadores"`
}

// UpdateEquipo overwrites the provided fields only. Changing the category
// never recomputes the cap; the default applies exclusively on create.
// PUT /api/equipos/:id
func UpdateEquipo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var equipo models.Equipo
	err = db.First(&equipo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Equipo no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el equipo", err)
	}

	var req updateEquipoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el equipo", err)
	}

	if req.Nombre != nil {
		equipo.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		if !models.CategoriaValida(*req.Categoria) {
			return utils.BadRequest(c, "Error al actualizar el equipo",
				fmt.Errorf("categoría inválida: %q", *req.Categoria))
		}
		equipo.Categoria = *req.Categoria
	}
	if req.Temporada != nil {
		equipo.TemporadaID = *req.Temporada
	}
	if req.Entrenador != nil {
		equipo.EntrenadorID = req.Entrenador
	}
	if req.LimiteJugadores != nil {
		equipo.LimiteJugadores = *req.LimiteJugadores
	}

	if err := db.Save(&equipo).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el equipo", err)
	}
	return c.JSON(equipo)
}

// DeleteEquipo removes a team. Players, attendance and objectives that
// reference it are not cascaded; dangling references are tolerated.
// DELETE /api/equipos/:id
func DeleteEquipo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.Equipo{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar el equipo", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Equipo no encontrado")
	}
	return c.JSON(fiber.Map{"mensaje": "Equipo eliminado correctamente"})
}
