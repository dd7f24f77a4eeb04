// handlers/jugadores.go - Player registry HTTP handlers
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

type temporadaAnteriorRequest struct {
	Temporada uint `json:"temporada"`
	Equipo    uint `json:"equipo"`
}

type createJugadorRequest struct {
	Nombre               string                     `json:"nombre"`
	Apellidos            string                     `json:"apellidos"`
	FechaNacimiento      string                     `json:"fechaNacimiento"`
	Posicion             string                     `json:"posicion"`
	Equipo               uint                       `json:"equipo"`
	Dorsal               int                        `json:"dorsal"`
	Observaciones        string                     `json:"observaciones"`
	Foto                 string                     `json:"foto"`
	TemporadasAnteriores []temporadaAnteriorRequest `json:"temporadasAnteriores"`
}

// GetJugadores returns every player sorted by surname then name
// GET /api/jugadores
func GetJugadores(c *fiber.Ctx) error {
	db := database.GetDB()

	var jugadores []models.Jugador
	if err := db.Preload("Equipo").
		Order("apellidos ASC, nombre ASC").
		Find(&jugadores).Error; err != nil {
		return utils.Internal(c, "Error al obtener jugadores", err)
	}
	return c.JSON(jugadores)
}

// GetJugador returns one player with the season/team names of every
// prior-assignment history entry resolved
// GET /api/jugadores/:id
func GetJugador(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var jugador models.Jugador
	err = db.Preload("Equipo").
		Preload("TemporadasAnteriores", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("temporadas_anteriores.id ASC")
		}).
		Preload("TemporadasAnteriores.Temporada").
		Preload("TemporadasAnteriores.Equipo").
		First(&jugador, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Jugador no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener el jugador", err)
	}
	return c.JSON(jugador)
}

// GetJugadoresPorEquipo returns the roster of one team
// GET /api/jugadores/equipo/:equipoId
func GetJugadoresPorEquipo(c *fiber.Ctx) error {
	equipoID, err := parseID(c, "equipoId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var jugadores []models.Jugador
	if err := db.Where("equipo_id = ?", equipoID).
		Order("apellidos ASC, nombre ASC").
		Find(&jugadores).Error; err != nil {
		return utils.Internal(c, "Error al obtener jugadores por equipo", err)
	}
	return c.JSON(jugadores)
}

// CreateJugador creates a player with an optional assignment history.
// POST /api/jugadores
func CreateJugador(c *fiber.Ctx) error {
	var req createJugadorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear el jugador", err)
	}
	if req.Nombre == "" || req.Apellidos == "" {
		return utils.BadRequest(c, "Error al crear el jugador", errors.New("nombre y apellidos son obligatorios"))
	}
	if !models.PosicionValida(req.Posicion) {
		return utils.BadRequest(c, "Error al crear el jugador",
			fmt.Errorf("posición inválida: %q", req.Posicion))
	}
	if req.Equipo == 0 {
		return utils.BadRequest(c, "Error al crear el jugador", errors.New("el equipo es obligatorio"))
	}
	nacimiento, err := utils.ParseFecha(req.FechaNacimiento)
	if err != nil {
		return utils.BadRequest(c, "Error al crear el jugador", err)
	}

	jugador := models.Jugador{
		Nombre:          req.Nombre,
		Apellidos:       req.Apellidos,
		FechaNacimiento: nacimiento,
		Posicion:        req.Posicion,
		EquipoID:        req.Equipo,
		Dorsal:          req.Dorsal,
		Observaciones:   req.Observaciones,
		Foto:            req.Foto,
	}
	for _, h := range req.TemporadasAnteriores {
		jugador.TemporadasAnteriores = append(jugador.TemporadasAnteriores, models.TemporadaAnterior{
			TemporadaID: h.Temporada,
			EquipoID:    h.Equipo,
		})
	}

	db := database.GetDB()
	if err := db.Create(&jugador).Error; err != nil {
		return utils.BadRequest(c, "Error al crear el jugador", err)
	}
	return c.Status(fiber.StatusCreated).JSON(jugador)
}

type updateJugadorRequest struct {
	Nombre               *string                    `json:"nombre"`
	Apellidos            *string                    `json:"apellidos"`
	FechaNacimiento      *string                    `json:"fechaNacimiento"`
	Posicion             *string                    `json:"posicion"`
	Equipo               *uint                      `json:"equipo"`
	Dorsal               *int                       `json:"dorsal"`
	Observaciones        *string                    `json:"observaciones"`
	Foto                 *string                    `json:"foto"`
	TemporadasAnteriores []temporadaAnteriorRequest `json:"temporadasAnteriores"`
}

// UpdateJugador overwrites the provided fields. A non-null
// temporadasAnteriores replaces the whole history, preserving the order
// it arrives in.
// PUT /api/jugadores/:id
func UpdateJugador(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var jugador models.Jugador
	err = db.Preload("TemporadasAnteriores").First(&jugador, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Jugador no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar el jugador", err)
	}

	var req updateJugadorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el jugador", err)
	}

	if req.Nombre != nil {
		jugador.Nombre = *req.Nombre
	}
	if req.Apellidos != nil {
		jugador.Apellidos = *req.Apellidos
	}
	if req.FechaNacimiento != nil {
		nacimiento, err := utils.ParseFecha(*req.FechaNacimiento)
		if err != nil {
			return utils.BadRequest(c, "Error al actualizar el jugador", err)
		}
		jugador.FechaNacimiento = nacimiento
	}
	if req.Posicion != nil {
		if !models.PosicionValida(*req.Posicion) {
			return utils.BadRequest(c, "Error al actualizar el jugador",
				fmt.Errorf("posición inválida: %q", *req.Posicion))
		}
		jugador.Posicion = *req.Posicion
	}
	if req.Equipo != nil {
		jugador.EquipoID = *req.Equipo
	}
	if req.Dorsal != nil {
		jugador.Dorsal = *req.Dorsal
	}
	if req.Observaciones != nil {
		jugador.Observaciones = *req.Observaciones
	}
	if req.Foto != nil {
		jugador.Foto = *req.Foto
	}

	if err := db.Omit("TemporadasAnteriores").Save(&jugador).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar el jugador", err)
	}

	if req.TemporadasAnteriores != nil {
		if err := db.Where("jugador_id = ?", jugador.ID).
			Delete(&models.TemporadaAnterior{}).Error; err != nil {
			return utils.Internal(c, "Error al actualizar el jugador", err)
		}
		jugador.TemporadasAnteriores = jugador.TemporadasAnteriores[:0]
		for _, h := range req.TemporadasAnteriores {
			entrada := models.TemporadaAnterior{
				JugadorID:   jugador.ID,
				TemporadaID: h.Temporada,
				EquipoID:    h.Equipo,
			}
			if err := db.Create(&entrada).Error; err != nil {
				return utils.BadRequest(c, "Error al actualizar el jugador", err)
			}
			jugador.TemporadasAnteriores = append(jugador.TemporadasAnteriores, entrada)
		}
	}

	return c.JSON(jugador)
}

// DeleteJugador removes a player. Attendance and rating rows that point
// at it are left behind.
// DELETE /api/jugadores/:id
func DeleteJugador(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.Jugador{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar el jugador", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Jugador no encontrado")
	}
	return c.JSON(fiber.Map{"mensaje": "Jugador eliminado correctamente"})
}
