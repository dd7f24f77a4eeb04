// handlers/equipos_test.go
package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func crearTemporadaDePrueba(t *testing.T, app *fiber.App) uint {
	t.Helper()
	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2025-2026", "fechaInicio": "2025-09-01", "fechaFin": "2026-06-30", "activa": true,
	})
	wantStatus(t, resp, 201)
	return id(t, decodeMap(t, resp))
}

func TestCrearEquipoLimitePorDefecto(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	casos := []struct {
		categoria string
		limite    float64
	}{
		{"Prebenjamín", 15},
		{"Benjamín", 15},
		{"Alevín", 18},
		{"Infantil", 18},
		{"Cadete", 18},
		{"Juvenil", 18},
		{"Regional", 18},
	}
	for i, caso := range casos {
		resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
			"nombre":    fmt.Sprintf("%s A %d", caso.categoria, i),
			"categoria": caso.categoria,
			"temporada": temporadaID,
		})
		wantStatus(t, resp, 201)
		equipo := decodeMap(t, resp)
		if equipo["limiteJugadores"] != caso.limite {
			t.Errorf("%s: limiteJugadores = %v, want %v", caso.categoria, equipo["limiteJugadores"], caso.limite)
		}
	}
}

func TestCrearEquipoLimiteExplicito(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre":          "Benjamín B",
		"categoria":       "Benjamín",
		"temporada":       temporadaID,
		"limiteJugadores": 22,
	})
	wantStatus(t, resp, 201)
	if got := decodeMap(t, resp)["limiteJugadores"]; got != float64(22) {
		t.Errorf("limiteJugadores = %v, want 22", got)
	}

	// An explicit zero is stored as sent, not replaced by the default
	resp = doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre":          "Benjamín C",
		"categoria":       "Benjamín",
		"temporada":       temporadaID,
		"limiteJugadores": 0,
	})
	wantStatus(t, resp, 201)
	if got := decodeMap(t, resp)["limiteJugadores"]; got != float64(0) {
		t.Errorf("limiteJugadores = %v, want 0", got)
	}
}

func TestCrearEquipoCategoriaInvalida(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre":    "Senior A",
		"categoria": "Senior",
		"temporada": temporadaID,
	})
	wantStatus(t, resp, 400)
	if got := decodeMap(t, resp)["mensaje"]; got != "Error al crear el equipo" {
		t.Errorf("mensaje = %v", got)
	}
}

func TestActualizarEquipoNoRecalculaLimite(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Benjamín A", "categoria": "Benjamín", "temporada": temporadaID,
	})
	equipo := decodeMap(t, resp)

	// Moving up a category keeps the stored limit untouched
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/equipos/%d", id(t, equipo)), map[string]interface{}{
		"categoria": "Alevín",
	})
	wantStatus(t, resp, 200)
	actualizado := decodeMap(t, resp)
	if actualizado["categoria"] != "Alevín" {
		t.Errorf("categoria = %v", actualizado["categoria"])
	}
	if actualizado["limiteJugadores"] != float64(15) {
		t.Errorf("limiteJugadores = %v, want 15", actualizado["limiteJugadores"])
	}
}

func TestEquiposPorTemporada(t *testing.T) {
	app := newTestApp(t)
	temporadaID := crearTemporadaDePrueba(t, app)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2024-2025", "fechaInicio": "2024-09-01", "fechaFin": "2025-06-30",
	})
	otraTemporada := id(t, decodeMap(t, resp))

	doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Infantil A", "categoria": "Infantil", "temporada": temporadaID,
	})
	doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Cadete A", "categoria": "Cadete", "temporada": temporadaID,
	})
	doRequest(t, app, "POST", "/api/equipos", map[string]interface{}{
		"nombre": "Infantil A", "categoria": "Infantil", "temporada": otraTemporada,
	})

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/equipos/temporada/%d", temporadaID), nil)
	wantStatus(t, resp, 200)
	if equipos := decodeList(t, resp); len(equipos) != 2 {
		t.Errorf("len = %d, want 2", len(equipos))
	}
}

func TestEquipoNoEncontrado(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "GET", "/api/equipos/9999", nil)
	wantStatus(t, resp, 404)
	if got := decodeMap(t, resp)["mensaje"]; got != "Equipo no encontrado" {
		t.Errorf("mensaje = %v", got)
	}
}
