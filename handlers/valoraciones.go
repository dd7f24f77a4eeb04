// handlers/valoraciones.go - Rating log HTTP handlers
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

// GetValoraciones returns every rating, newest first
// GET /api/valoraciones
func GetValoraciones(c *fiber.Ctx) error {
	db := database.GetDB()

	var valoraciones []models.Valoracion
	if err := db.Preload("Jugador").
		Order("fecha DESC").
		Find(&valoraciones).Error; err != nil {
		return utils.Internal(c, "Error al obtener valoraciones", err)
	}
	return c.JSON(valoraciones)
}

// GetValoracionesPorJugador returns one player's ratings
// GET /api/valoraciones/jugador/:jugadorId
func GetValoracionesPorJugador(c *fiber.Ctx) error {
	jugadorID, err := parseID(c, "jugadorId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var valoraciones []models.Valoracion
	if err := db.Where("jugador_id = ?", jugadorID).
		Order("fecha DESC").
		Find(&valoraciones).Error; err != nil {
		return utils.Internal(c, "Error al obtener valoraciones del jugador", err)
	}
	return c.JSON(valoraciones)
}

type createValoracionRequest struct {
	Jugador               uint   `json:"jugador"`
	Fecha                 string `json:"fecha"`
	ValoracionTecnica     *int   `json:"valoracionTecnica"`
	ValoracionTactica     *int   `json:"valoracionTactica"`
	ValoracionFisica      *int   `json:"valoracionFisica"`
	ValoracionActitudinal *int   `json:"valoracionActitudinal"`
	Comentarios           string `json:"comentarios"`
}

// CreateValoracion creates a rating. All four axes are required and must
// sit in [1,5].
// POST /api/valoraciones
func CreateValoracion(c *fiber.Ctx) error {
	var req createValoracionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear la valoración", err)
	}
	if req.Jugador == 0 {
		return utils.BadRequest(c, "Error al crear la valoración", errors.New("el jugador es obligatorio"))
	}

	ejes := map[string]*int{
		"valoracionTecnica":     req.ValoracionTecnica,
		"valoracionTactica":     req.ValoracionTactica,
		"valoracionFisica":      req.ValoracionFisica,
		"valoracionActitudinal": req.ValoracionActitudinal,
	}
	for nombre, valor := range ejes {
		if valor == nil {
			return utils.BadRequest(c, "Error al crear la valoración",
				fmt.Errorf("el campo %s es obligatorio", nombre))
		}
		if !models.ValoracionEnRango(*valor) {
			return utils.BadRequest(c, "Error al crear la valoración",
				fmt.Errorf("%s fuera de rango: %d (debe estar entre %d y %d)",
					nombre, *valor, models.ValoracionMinima, models.ValoracionMaxima))
		}
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := utils.ParseFecha(req.Fecha)
		if err != nil {
			return utils.BadRequest(c, "Error al crear la valoración", err)
		}
		fecha = parsed
	}

	valoracion := models.Valoracion{
		JugadorID:             req.Jugador,
		Fecha:                 fecha,
		ValoracionTecnica:     *req.ValoracionTecnica,
		ValoracionTactica:     *req.ValoracionTactica,
		ValoracionFisica:      *req.ValoracionFisica,
		ValoracionActitudinal: *req.ValoracionActitudinal,
		Comentarios:           req.Comentarios,
	}

	db := database.GetDB()
	if err := db.Create(&valoracion).Error; err != nil {
		return utils.BadRequest(c, "Error al crear la valoración", err)
	}
	return c.Status(fiber.StatusCreated).JSON(valoracion)
}

type updateValoracionRequest struct {
	ValoracionTecnica     *int    `json:"valoracionTecnica"`
	ValoracionTactica     *int    `json:"valoracionTactica"`
	ValoracionFisica      *int    `json:"valoracionFisica"`
	ValoracionActitudinal *int    `json:"valoracionActitudinal"`
	Comentarios           *string `json:"comentarios"`
}

// UpdateValoracion overwrites the provided axes only; omitted ones keep
// their value.
// PUT /api/valoraciones/:id
func UpdateValoracion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var valoracion models.Valoracion
	err = db.First(&valoracion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Valoración no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar la valoración", err)
	}

	var req updateValoracionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar la valoración", err)
	}

	ejes := []struct {
		nombre  string
		valor   *int
		destino *int
	}{
		{"valoracionTecnica", req.ValoracionTecnica, &valoracion.ValoracionTecnica},
		{"valoracionTactica", req.ValoracionTactica, &valoracion.ValoracionTactica},
		{"valoracionFisica", req.ValoracionFisica, &valoracion.ValoracionFisica},
		{"valoracionActitudinal", req.ValoracionActitudinal, &valoracion.ValoracionActitudinal},
	}
	for _, eje := range ejes {
		if eje.valor == nil {
			continue
		}
		if !models.ValoracionEnRango(*eje.valor) {
			return utils.BadRequest(c, "Error al actualizar la valoración",
				fmt.Errorf("%s fuera de rango: %d (debe estar entre %d y %d)",
					eje.nombre, *eje.valor, models.ValoracionMinima, models.ValoracionMaxima))
		}
		*eje.destino = *eje.valor
	}
	if req.Comentarios != nil {
		valoracion.Comentarios = *req.Comentarios
	}

	if err := db.Save(&valoracion).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar la valoración", err)
	}
	return c.JSON(valoracion)
}

// DeleteValoracion removes a rating
// DELETE /api/valoraciones/:id
func DeleteValoracion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.Valoracion{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar la valoración", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Valoración no encontrada")
	}
	return c.JSON(fiber.Map{"mensaje": "Valoración eliminada correctamente"})
}
