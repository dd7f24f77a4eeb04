// handlers/asistencias.go - Attendance ledger HTTP handlers
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/services"
	"clubsanagustin/utils"
)

// GetAsistencias returns every record, newest first
// GET /api/asistencias
func GetAsistencias(c *fiber.Ctx) error {
	asistencias, err := asistenciaService.ListAsistencias()
	if err != nil {
		return utils.Internal(c, "Error al obtener asistencias", err)
	}
	return c.JSON(asistencias)
}

// GetAsistenciasPorJugador returns one player's records
// GET /api/asistencias/jugador/:jugadorId
func GetAsistenciasPorJugador(c *fiber.Ctx) error {
	jugadorID, err := parseID(c, "jugadorId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	asistencias, err := asistenciaService.PorJugador(jugadorID)
	if err != nil {
		return utils.Internal(c, "Error al obtener asistencias del jugador", err)
	}
	return c.JSON(asistencias)
}

// GetAsistenciasPorFecha returns every record of one calendar day
// GET /api/asistencias/fecha/:fecha
func GetAsistenciasPorFecha(c *fiber.Ctx) error {
	dia, err := utils.ParseFecha(c.Params("fecha"))
	if err != nil {
		return utils.BadRequest(c, "Fecha inválida", err)
	}

	asistencias, err := asistenciaService.PorFecha(dia)
	if err != nil {
		return utils.Internal(c, "Error al obtener asistencias por fecha", err)
	}
	return c.JSON(asistencias)
}

// GetAsistenciasPorEquipo returns the records of a team's roster
// GET /api/asistencias/equipo/:equipoId
func GetAsistenciasPorEquipo(c *fiber.Ctx) error {
	equipoID, err := parseID(c, "equipoId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	asistencias, err := asistenciaService.PorEquipo(equipoID)
	if err != nil {
		return utils.Internal(c, "Error al obtener asistencias por equipo", err)
	}
	return c.JSON(asistencias)
}

type createAsistenciaRequest struct {
	Jugador        uint   `json:"jugador"`
	Fecha          string `json:"fecha"`
	Asistio        *bool  `json:"asistio"`
	MotivoAusencia string `json:"motivoAusencia"`
	Observaciones  string `json:"observaciones"`
}

// CreateAsistencia records one player for one date; a second record for
// the same pair is rejected with 400 before touching storage
// POST /api/asistencias
func CreateAsistencia(c *fiber.Ctx) error {
	var req createAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al registrar la asistencia", err)
	}
	if req.Jugador == 0 {
		return utils.BadRequest(c, "Error al registrar la asistencia", errors.New("el jugador es obligatorio"))
	}
	fecha, err := utils.ParseFecha(req.Fecha)
	if err != nil {
		return utils.BadRequest(c, "Error al registrar la asistencia", err)
	}

	// Attended defaults to true when omitted
	asistio := true
	if req.Asistio != nil {
		asistio = *req.Asistio
	}

	asistencia, err := asistenciaService.Registrar(req.Jugador, fecha, asistio, req.MotivoAusencia, req.Observaciones)
	if errors.Is(err, services.ErrAsistenciaDuplicada) {
		return utils.BadRequest(c, "Ya existe un registro de asistencia para este jugador en esta fecha", err)
	}
	if err != nil {
		return utils.BadRequest(c, "Error al registrar la asistencia", err)
	}
	return c.Status(fiber.StatusCreated).JSON(asistencia)
}

type loteRequest struct {
	Fecha     string                  `json:"fecha"`
	Registros []services.RegistroLote `json:"registros"`
}

// CreateAsistenciasLote records a whole training session in one call:
// one upsert per entry, processed in order, without batch isolation.
// POST /api/asistencias/lote
func CreateAsistenciasLote(c *fiber.Ctx) error {
	var req loteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al registrar asistencias en lote", err)
	}
	fecha, err := utils.ParseFecha(req.Fecha)
	if err != nil {
		return utils.BadRequest(c, "Error al registrar asistencias en lote", err)
	}

	resultados, err := asistenciaService.RegistrarLote(fecha, req.Registros)
	if err != nil {
		return utils.BadRequest(c, "Error al registrar asistencias en lote", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"mensaje":    fmt.Sprintf("Se han registrado %d asistencias", len(resultados)),
		"resultados": resultados,
	})
}

type updateAsistenciaRequest struct {
	Asistio        bool   `json:"asistio"`
	MotivoAusencia string `json:"motivoAusencia"`
	Observaciones  string `json:"observaciones"`
}

// UpdateAsistencia overwrites the mutable fields of a record; the
// (player, date) pair is immutable
// PUT /api/asistencias/:id
func UpdateAsistencia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	var req updateAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar la asistencia", err)
	}

	asistencia, err := asistenciaService.Actualizar(id, req.Asistio, req.MotivoAusencia, req.Observaciones)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Asistencia no encontrada")
	}
	if err != nil {
		return utils.BadRequest(c, "Error al actualizar la asistencia", err)
	}
	return c.JSON(asistencia)
}

// DeleteAsistencia removes one record
// DELETE /api/asistencias/:id
func DeleteAsistencia(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	err = asistenciaService.Eliminar(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Asistencia no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al eliminar la asistencia", err)
	}
	return c.JSON(fiber.Map{"mensaje": "Asistencia eliminada correctamente"})
}
