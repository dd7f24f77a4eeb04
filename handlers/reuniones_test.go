// handlers/reuniones_test.go
package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func crearUsuarioDePrueba(t *testing.T, app *fiber.App, nombre string) uint {
	t.Helper()
	resp := doRequest(t, app, "POST", "/api/usuarios", map[string]interface{}{
		"nombreUsuario": nombre,
	})
	wantStatus(t, resp, 201)
	return id(t, decodeMap(t, resp))
}

func TestCrearReunionConRelaciones(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Alevín A", "categoria": "Alevín", "temporada": temporadaID,
	})
	equipoID := id(t, decodeMap(t, resp))
	entrenador := crearUsuarioDePrueba(t, app, "paco.martinez")
	coordinador := crearUsuarioDePrueba(t, app, "lucia.romero")

	resp = doRequest(t, app, "POST", "/api/reuniones", map[string]interface{}{
		"fecha":               "2025-09-01",
		"participantes":       []uint{entrenador, coordinador},
		"acta":                "Planificación de pretemporada",
		"acuerdos":            "Doblar sesiones en septiembre",
		"equiposInvolucrados": []uint{equipoID},
	})
	wantStatus(t, resp, 201)
	reunion := decodeMap(t, resp)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/reuniones/%d", id(t, reunion)), nil)
	wantStatus(t, resp, 200)
	detalle := decodeMap(t, resp)

	participantes, ok := detalle["participantes"].([]interface{})
	if !ok || len(participantes) != 2 {
		t.Fatalf("participantes = %v", detalle["participantes"])
	}
	equipos, ok := detalle["equiposInvolucrados"].([]interface{})
	if !ok || len(equipos) != 1 {
		t.Fatalf("equiposInvolucrados = %v", detalle["equiposInvolucrados"])
	}
	if equipo := equipos[0].(map[string]interface{}); equipo["nombre"] != "Alevín A" {
		t.Errorf("equipo = %v", equipo["nombre"])
	}

	// Linking meeting members never creates roster rows
	resp = doRequest(t, app, "GET", "/api/usuarios", nil)
	if usuarios := decodeList(t, resp); len(usuarios) != 2 {
		t.Errorf("usuarios = %d, want 2", len(usuarios))
	}
}

func TestReunionesPorEquipoInvolucrado(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Infantil A", "categoria": "Infantil", "temporada": temporadaID,
	})
	equipoA := id(t, decodeMap(t, resp))
	resp = doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Cadete A", "categoria": "Cadete", "temporada": temporadaID,
	})
	equipoB := id(t, decodeMap(t, resp))

	doRequest(t, app, "POST", "/api/reuniones", map[string]interface{}{
		"fecha": "2025-09-01", "acta": "Sobre el Infantil",
		"equiposInvolucrados": []uint{equipoA},
	})
	doRequest(t, app, "POST", "/api/reuniones", map[string]interface{}{
		"fecha": "2025-09-02", "acta": "Sobre el Cadete",
		"equiposInvolucrados": []uint{equipoB},
	})
	doRequest(t, app, "POST", "/api/reuniones", map[string]interface{}{
		"fecha": "2025-09-03", "acta": "Sobre ambos",
		"equiposInvolucrados": []uint{equipoA, equipoB},
	})

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/reuniones/equipo/%d", equipoA), nil)
	wantStatus(t, resp, 200)
	reuniones := decodeList(t, resp)
	if len(reuniones) != 2 {
		t.Fatalf("len = %d, want 2", len(reuniones))
	}
}

func TestActualizarReunionReemplazaListas(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Juvenil A", "categoria": "Juvenil", "temporada": temporadaID,
	})
	equipoA := id(t, decodeMap(t, resp))
	resp = doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Regional A", "categoria": "Regional", "temporada": temporadaID,
	})
	equipoB := id(t, decodeMap(t, resp))
	entrenador := crearUsuarioDePrueba(t, app, "paco.martinez")

	resp = doRequest(t, app, "POST", "/api/reuniones", map[string]interface{}{
		"fecha":               "2025-09-01",
		"participantes":       []uint{entrenador},
		"acta":                "Acta inicial",
		"equiposInvolucrados": []uint{equipoA},
	})
	reunionID := id(t, decodeMap(t, resp))

	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/reuniones/%d", reunionID), map[string]interface{}{
		"acuerdos":            "Revisar convocatorias",
		"equiposInvolucrados": []uint{equipoB},
	})
	wantStatus(t, resp, 200)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/reuniones/%d", reunionID), nil)
	detalle := decodeMap(t, resp)
	if detalle["acta"] != "Acta inicial" {
		t.Errorf("acta = %v, want untouched", detalle["acta"])
	}
	if detalle["acuerdos"] != "Revisar convocatorias" {
		t.Errorf("acuerdos = %v", detalle["acuerdos"])
	}
	equipos := detalle["equiposInvolucrados"].([]interface{})
	if len(equipos) != 1 {
		t.Fatalf("equiposInvolucrados = %v", detalle["equiposInvolucrados"])
	}
	if equipo := equipos[0].(map[string]interface{}); equipo["nombre"] != "Regional A" {
		t.Errorf("equipo = %v, want the replacement", equipo["nombre"])
	}
}

func TestReunionNoEncontrada(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "GET", "/api/reuniones/9999", nil)
	wantStatus(t, resp, 404)
	if got := decodeMap(t, resp)["mensaje"]; got != "Reunión técnica no encontrada" {
		t.Errorf("mensaje = %v", got)
	}

	resp = doRequest(t, app, "DELETE", "/api/reuniones/9999", nil)
	wantStatus(t, resp, 404)
}
