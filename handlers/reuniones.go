// handlers/reuniones.go - Technical meeting log HTTP handlers
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/database"
	"clubsanagustin/models"
	"clubsanagustin/utils"
)

// GetReuniones returns every meeting with participants and involved
// teams resolved, newest first
// GET /api/reuniones
func GetReuniones(c *fiber.Ctx) error {
	db := database.GetDB()

	var reuniones []models.ReunionTecnica
	if err := db.Preload("Participantes").Preload("EquiposInvolucrados").
		Order("fecha DESC").
		Find(&reuniones).Error; err != nil {
		return utils.Internal(c, "Error al obtener reuniones técnicas", err)
	}
	return c.JSON(reuniones)
}

// GetReunion returns one meeting
// GET /api/reuniones/:id
func GetReunion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var reunion models.ReunionTecnica
	err = db.Preload("Participantes").Preload("EquiposInvolucrados").
		First(&reunion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Reunión técnica no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener la reunión técnica", err)
	}
	return c.JSON(reunion)
}

// GetReunionesPorEquipo returns the meetings whose involved-team list
// contains the given team
// GET /api/reuniones/equipo/:equipoId
func GetReunionesPorEquipo(c *fiber.Ctx) error {
	equipoID, err := parseID(c, "equipoId")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var reuniones []models.ReunionTecnica
	if err := db.Preload("Participantes").
		Joins("JOIN reunion_equipos ON reunion_equipos.reunion_tecnica_id = reuniones_tecnicas.id").
		Where("reunion_equipos.equipo_id = ?", equipoID).
		Order("fecha DESC").
		Find(&reuniones).Error; err != nil {
		return utils.Internal(c, "Error al obtener reuniones del equipo", err)
	}
	return c.JSON(reuniones)
}

type reunionRequest struct {
	Fecha               string `json:"fecha"`
	Participantes       []uint `json:"participantes"`
	Acta                string `json:"acta"`
	Acuerdos            string `json:"acuerdos"`
	EquiposInvolucrados []uint `json:"equiposInvolucrados"`
}

// CreateReunion files a meeting record. Participant and team references
// are stored without an existence check.
// POST /api/reuniones
func CreateReunion(c *fiber.Ctx) error {
	var req reunionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear la reunión técnica", err)
	}
	if req.Acta == "" {
		return utils.BadRequest(c, "Error al crear la reunión técnica", errors.New("el acta es obligatoria"))
	}

	fecha := time.Now()
	if req.Fecha != "" {
		parsed, err := utils.ParseFecha(req.Fecha)
		if err != nil {
			return utils.BadRequest(c, "Error al crear la reunión técnica", err)
		}
		fecha = parsed
	}

	reunion := models.ReunionTecnica{
		Fecha:               fecha,
		Acta:                req.Acta,
		Acuerdos:            req.Acuerdos,
		Participantes:       usuariosPorID(req.Participantes),
		EquiposInvolucrados: equiposPorID(req.EquiposInvolucrados),
	}

	db := database.GetDB()
	// Omit("*.*") keeps Create from upserting the referenced usuarios and
	// equipos rows; only the join rows are written.
	if err := db.Omit("Participantes.*", "EquiposInvolucrados.*").
		Create(&reunion).Error; err != nil {
		return utils.BadRequest(c, "Error al crear la reunión técnica", err)
	}
	return c.Status(fiber.StatusCreated).JSON(reunion)
}

type updateReunionRequest struct {
	Fecha               *string `json:"fecha"`
	Participantes       []uint  `json:"participantes"`
	Acta                *string `json:"acta"`
	Acuerdos            *string `json:"acuerdos"`
	EquiposInvolucrados []uint  `json:"equiposInvolucrados"`
}

// UpdateReunion overwrites the provided fields; non-null participant or
// team lists replace the previous ones entirely
// PUT /api/reuniones/:id
func UpdateReunion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	var reunion models.ReunionTecnica
	err = db.Preload("Participantes").Preload("EquiposInvolucrados").
		First(&reunion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Reunión técnica no encontrada")
	}
	if err != nil {
		return utils.Internal(c, "Error al actualizar la reunión técnica", err)
	}

	var req updateReunionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar la reunión técnica", err)
	}

	if req.Fecha != nil {
		parsed, err := utils.ParseFecha(*req.Fecha)
		if err != nil {
			return utils.BadRequest(c, "Error al actualizar la reunión técnica", err)
		}
		reunion.Fecha = parsed
	}
	if req.Acta != nil {
		reunion.Acta = *req.Acta
	}
	if req.Acuerdos != nil {
		reunion.Acuerdos = *req.Acuerdos
	}

	if err := db.Omit("Participantes", "EquiposInvolucrados").
		Save(&reunion).Error; err != nil {
		return utils.BadRequest(c, "Error al actualizar la reunión técnica", err)
	}

	if req.Participantes != nil {
		participantes := usuariosPorID(req.Participantes)
		if err := db.Model(&reunion).
			Association("Participantes").Replace(participantes); err != nil {
			return utils.BadRequest(c, "Error al actualizar la reunión técnica", err)
		}
		reunion.Participantes = participantes
	}
	if req.EquiposInvolucrados != nil {
		equipos := equiposPorID(req.EquiposInvolucrados)
		if err := db.Model(&reunion).
			Association("EquiposInvolucrados").Replace(equipos); err != nil {
			return utils.BadRequest(c, "Error al actualizar la reunión técnica", err)
		}
		reunion.EquiposInvolucrados = equipos
	}

	return c.JSON(reunion)
}

// DeleteReunion removes a meeting record
// DELETE /api/reuniones/:id
func DeleteReunion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	db := database.GetDB()
	res := db.Delete(&models.ReunionTecnica{}, id)
	if res.Error != nil {
		return utils.Internal(c, "Error al eliminar la reunión técnica", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Reunión técnica no encontrada")
	}
	return c.JSON(fiber.Map{"mensaje": "Reunión técnica eliminada correctamente"})
}

func usuariosPorID(ids []uint) []models.Usuario {
	usuarios := make([]models.Usuario, 0, len(ids))
	for _, id := range ids {
		usuarios = append(usuarios, models.Usuario{ID: id})
	}
	return usuarios
}

func equiposPorID(ids []uint) []models.Equipo {
	equipos := make([]models.Equipo, 0, len(ids))
	for _, id := range ids {
		equipos = append(equipos, models.Equipo{ID: id})
	}
	return equipos
}
