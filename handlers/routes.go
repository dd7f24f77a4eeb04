// handlers/routes.go - service wiring and route registration
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"clubsanagustin/database"
	"clubsanagustin/services"
)

var (
	temporadaService  *services.TemporadaService
	asistenciaService *services.AsistenciaService
	usuarioService    *services.UsuarioService
)

// InitServices wires the handler-level services to the shared database
// connection. Call after database.InitDB; in degraded mode (no database)
// the services stay nil and middleware.RequireDatabase keeps requests
// from ever reaching them.
func InitServices() {
	db := database.GetDB()
	if db == nil {
		return
	}
	temporadaService = services.NewTemporadaService(db)
	asistenciaService = services.NewAsistenciaService(db)
	usuarioService = services.NewUsuarioService(db)
}

// RegisterRoutes mounts every entity's routes on the given router,
// normally the /api group.
func RegisterRoutes(api fiber.Router) {
	temporadas := api.Group("/temporadas")
	temporadas.Get("/", GetTemporadas)
	temporadas.Get("/:id", GetTemporada)
	temporadas.Post("/", CreateTemporada)
	temporadas.Put("/:id", UpdateTemporada)
	temporadas.Delete("/:id", DeleteTemporada)

	equipos := api.Group("/equipos")
	equipos.Get("/", GetEquipos)
	equipos.Get("/temporada/:temporadaId", GetEquiposPorTemporada)
	equipos.Get("/:id", GetEquipo)
	equipos.Post("/", CreateEquipo)
	equipos.Put("/:id", UpdateEquipo)
	equipos.Delete("/:id", DeleteEquipo)

	jugadores := api.Group("/jugadores")
	jugadores.Get("/", GetJugadores)
	jugadores.Get("/equipo/:equipoId", GetJugadoresPorEquipo)
	jugadores.Get("/:id", GetJugador)
	jugadores.Post("/", CreateJugador)
	jugadores.Put("/:id", UpdateJugador)
	jugadores.Delete("/:id", DeleteJugador)

	asistencias := api.Group("/asistencias")
	asistencias.Get("/", GetAsistencias)
	asistencias.Get("/jugador/:jugadorId", GetAsistenciasPorJugador)
	asistencias.Get("/fecha/:fecha", GetAsistenciasPorFecha)
	asistencias.Get("/equipo/:equipoId", GetAsistenciasPorEquipo)
	asistencias.Post("/", CreateAsistencia)
	asistencias.Post("/lote", CreateAsistenciasLote)
	asistencias.Put("/:id", UpdateAsistencia)
	asistencias.Delete("/:id", DeleteAsistencia)

	valoraciones := api.Group("/valoraciones")
	valoraciones.Get("/", GetValoraciones)
	valoraciones.Get("/jugador/:jugadorId", GetValoracionesPorJugador)
	valoraciones.Post("/", CreateValoracion)
	valoraciones.Put("/:id", UpdateValoracion)
	valoraciones.Delete("/:id", DeleteValoracion)

	scouting := api.Group("/scouting")
	scouting.Get("/", GetScouting)
	scouting.Get("/seguimiento", GetScoutingEnSeguimiento)
	scouting.Get("/equipo/:equipoId", GetScoutingPorEquipo)
	scouting.Post("/", CreateScouting)
	scouting.Put("/:id", UpdateScouting)
	scouting.Patch("/:id/seguimiento", UpdateSeguimiento)
	scouting.Delete("/:id", DeleteScouting)

	objetivos := api.Group("/objetivos")
	objetivos.Get("/", GetObjetivos)
	objetivos.Get("/equipo/:equipoId", GetObjetivosPorEquipo)
	objetivos.Get("/temporada/:temporadaId", GetObjetivosPorTemporada)
	objetivos.Post("/", CreateObjetivo)
	objetivos.Put("/:id", UpdateObjetivo)
	objetivos.Patch("/:id/estado", UpdateEstadoObjetivo)
	objetivos.Delete("/:id", DeleteObjetivo)

	reuniones := api.Group("/reuniones")
	reuniones.Get("/", GetReuniones)
	reuniones.Get("/equipo/:equipoId", GetReunionesPorEquipo)
	reuniones.Get("/:id", GetReunion)
	reuniones.Post("/", CreateReunion)
	reuniones.Put("/:id", UpdateReunion)
	reuniones.Delete("/:id", DeleteReunion)

	usuarios := api.Group("/usuarios")
	usuarios.Get("/", GetUsuarios)
	usuarios.Get("/nombre/:nombreUsuario", GetUsuarioPorNombre)
	usuarios.Get("/:id", GetUsuario)
	usuarios.Post("/", CreateUsuario)
	usuarios.Post("/acceso", Acceso)
	usuarios.Put("/:id", UpdateUsuario)
	usuarios.Delete("/:id", DeleteUsuario)
}

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(id), err
}
