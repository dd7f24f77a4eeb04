// handlers/scouting_test.go
package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func crearScouting(t *testing.T, app *fiber.App, nombre string, valoracion int, enSeguimiento bool) map[string]interface{} {
	t.Helper()
	resp := doRequest(t, app, "POST", "/api/scouting", map[string]interface{}{
		"nombreJugador":     nombre,
		"dorsal":            10,
		"equipoRival":       "CD Los Olivos",
		"posicion":          "Delantero",
		"valoracionGeneral": valoracion,
		"enSeguimiento":     enSeguimiento,
		"fechaObservacion":  "2025-09-01",
		"equipoObservador":  1,
	})
	wantStatus(t, resp, 201)
	return decodeMap(t, resp)
}

func TestCrearScouting(t *testing.T) {
	app := newTestApp(t)

	registro := crearScouting(t, app, "Dani Ortega", 4, true)
	if registro["equipoRival"] != "CD Los Olivos" {
		t.Errorf("equipoRival = %v", registro["equipoRival"])
	}
	if registro["enSeguimiento"] != true {
		t.Errorf("enSeguimiento = %v, want true", registro["enSeguimiento"])
	}
}

func TestCrearScoutingInvalido(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/scouting", map[string]interface{}{
		"nombreJugador":     "Dani Ortega",
		"equipoRival":       "CD Los Olivos",
		"posicion":          "Extremo",
		"valoracionGeneral": 4,
		"equipoObservador":  1,
	})
	wantStatus(t, resp, 400)

	resp = doRequest(t, app, "POST", "/api/scouting", map[string]interface{}{
		"nombreJugador":     "Dani Ortega",
		"equipoRival":       "CD Los Olivos",
		"posicion":          "Delantero",
		"valoracionGeneral": 7,
		"equipoObservador":  1,
	})
	wantStatus(t, resp, 400)
}

func TestScoutingEnSeguimientoOrdenado(t *testing.T) {
	app := newTestApp(t)

	crearScouting(t, app, "Jugador discreto", 2, true)
	crearScouting(t, app, "Jugador destacado", 5, true)
	crearScouting(t, app, "Jugador descartado", 4, false)

	resp := doRequest(t, app, "GET", "/api/scouting/seguimiento", nil)
	wantStatus(t, resp, 200)
	registros := decodeList(t, resp)
	if len(registros) != 2 {
		t.Fatalf("len = %d, want 2", len(registros))
	}
	if registros[0]["nombreJugador"] != "Jugador destacado" {
		t.Errorf("first = %v, want the best rated", registros[0]["nombreJugador"])
	}
}

func TestActualizarSeguimiento(t *testing.T) {
	app := newTestApp(t)

	registro := crearScouting(t, app, "Dani Ortega", 4, true)

	resp := doRequest(t, app, "PATCH", fmt.Sprintf("/api/scouting/%d/seguimiento", id(t, registro)), map[string]interface{}{
		"enSeguimiento": false,
	})
	wantStatus(t, resp, 200)
	if got := decodeMap(t, resp)["enSeguimiento"]; got != false {
		t.Errorf("enSeguimiento = %v, want false", got)
	}

	resp = doRequest(t, app, "GET", "/api/scouting/seguimiento", nil)
	if registros := decodeList(t, resp); len(registros) != 0 {
		t.Errorf("len = %d, want 0 after unfollowing", len(registros))
	}

	// The flag is mandatory on this endpoint
	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/scouting/%d/seguimiento", id(t, registro)), map[string]interface{}{})
	wantStatus(t, resp, 400)
}

func TestScoutingPorEquipo(t *testing.T) {
	app := newTestApp(t)

	crearScouting(t, app, "Visto por el uno", 3, false)

	resp := doRequest(t, app, "POST", "/api/scouting", map[string]interface{}{
		"nombreJugador":     "Visto por el dos",
		"equipoRival":       "UD Vallehermoso",
		"posicion":          "Portero",
		"valoracionGeneral": 3,
		"equipoObservador":  2,
	})
	wantStatus(t, resp, 201)

	resp = doRequest(t, app, "GET", "/api/scouting/equipo/2", nil)
	wantStatus(t, resp, 200)
	registros := decodeList(t, resp)
	if len(registros) != 1 {
		t.Fatalf("len = %d, want 1", len(registros))
	}
	if registros[0]["nombreJugador"] != "Visto por el dos" {
		t.Errorf("nombreJugador = %v", registros[0]["nombreJugador"])
	}
}

func TestScoutingNoEncontrado(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "PATCH", "/api/scouting/9999/seguimiento", map[string]interface{}{
		"enSeguimiento": true,
	})
	wantStatus(t, resp, 404)
	if got := decodeMap(t, resp)["mensaje"]; got != "Registro de scouting no encontrado" {
		t.Errorf("mensaje = %v", got)
	}

	resp = doRequest(t, app, "DELETE", "/api/scouting/9999", nil)
	wantStatus(t, resp, 404)
}
