// handlers/usuarios.go - User registry HTTP handlers
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubsanagustin/models"
	"clubsanagustin/services"
	"clubsanagustin/utils"
)

// GetUsuarios returns every user sorted by username
// GET /api/usuarios
func GetUsuarios(c *fiber.Ctx) error {
	usuarios, err := usuarioService.ListUsuarios()
	if err != nil {
		return utils.Internal(c, "Error al obtener usuarios", err)
	}
	return c.JSON(usuarios)
}

// GetUsuario returns one user with its team resolved
// GET /api/usuarios/:id
func GetUsuario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	usuario, err := usuarioService.GetUsuario(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Usuario no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener el usuario", err)
	}
	return c.JSON(usuario)
}

// GetUsuarioPorNombre resolves a username to its record
// GET /api/usuarios/nombre/:nombreUsuario
func GetUsuarioPorNombre(c *fiber.Ctx) error {
	usuario, err := usuarioService.PorNombre(c.Params("nombreUsuario"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Usuario no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al obtener el usuario", err)
	}
	return c.JSON(usuario)
}

type usuarioRequest struct {
	NombreUsuario string `json:"nombreUsuario"`
	Rol           string `json:"rol"`
	Equipo        *uint  `json:"equipo"`
}

// CreateUsuario creates a user; a duplicate username is rejected by a
// pre-query before the insert
// POST /api/usuarios
func CreateUsuario(c *fiber.Ctx) error {
	var req usuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al crear el usuario", err)
	}
	if req.NombreUsuario == "" {
		return utils.BadRequest(c, "Error al crear el usuario", errors.New("el nombre de usuario es obligatorio"))
	}
	if req.Rol != "" && !models.RolValido(req.Rol) {
		return utils.BadRequest(c, "Error al crear el usuario",
			fmt.Errorf("rol inválido: %q", req.Rol))
	}

	usuario, err := usuarioService.CreateUsuario(req.NombreUsuario, req.Rol, req.Equipo)
	if errors.Is(err, services.ErrNombreUsuarioEnUso) {
		return utils.BadRequest(c, "El nombre de usuario ya está en uso", err)
	}
	if err != nil {
		return utils.BadRequest(c, "Error al crear el usuario", err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// UpdateUsuario overwrites a user's fields, re-checking the username
// against everyone else
// PUT /api/usuarios/:id
func UpdateUsuario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	var req usuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error al actualizar el usuario", err)
	}
	if req.Rol != "" && !models.RolValido(req.Rol) {
		return utils.BadRequest(c, "Error al actualizar el usuario",
			fmt.Errorf("rol inválido: %q", req.Rol))
	}

	usuario, err := usuarioService.UpdateUsuario(id, req.NombreUsuario, req.Rol, req.Equipo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Usuario no encontrado")
	}
	if errors.Is(err, services.ErrNombreUsuarioEnUso) {
		return utils.BadRequest(c, "El nombre de usuario ya está en uso", err)
	}
	if err != nil {
		return utils.BadRequest(c, "Error al actualizar el usuario", err)
	}
	return c.JSON(usuario)
}

// DeleteUsuario removes a user
// DELETE /api/usuarios/:id
func DeleteUsuario(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Identificador inválido", err)
	}

	err = usuarioService.DeleteUsuario(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Usuario no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error al eliminar el usuario", err)
	}
	return c.JSON(fiber.Map{"mensaje": "Usuario eliminado correctamente"})
}

type accesoRequest struct {
	NombreUsuario string `json:"nombreUsuario"`
}

// Acceso resolves a username to its record. There is no credential,
// token or session involved; this is a lookup, not authentication.
// POST /api/usuarios/acceso
func Acceso(c *fiber.Ctx) error {
	var req accesoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Error en el acceso", err)
	}

	usuario, err := usuarioService.PorNombre(req.NombreUsuario)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Usuario no encontrado")
	}
	if err != nil {
		return utils.Internal(c, "Error en el acceso", err)
	}
	return c.JSON(fiber.Map{
		"mensaje": "Acceso correcto",
		"usuario": usuario,
	})
}
