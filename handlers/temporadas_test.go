// handlers/temporadas_test.go
package handlers

import (
	"fmt"
	"testing"
)

func TestCrearTemporada(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre":      "2025-2026",
		"fechaInicio": "2025-09-01",
		"fechaFin":    "2026-06-30",
		"activa":      true,
	})
	wantStatus(t, resp, 201)

	temporada := decodeMap(t, resp)
	if temporada["nombre"] != "2025-2026" {
		t.Errorf("nombre = %v, want 2025-2026", temporada["nombre"])
	}
	if temporada["activa"] != true {
		t.Errorf("activa = %v, want true", temporada["activa"])
	}
}

func TestCrearTemporadaSinNombre(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"fechaInicio": "2025-09-01",
		"fechaFin":    "2026-06-30",
	})
	wantStatus(t, resp, 400)

	body := decodeMap(t, resp)
	if body["mensaje"] != "Error al crear la temporada" {
		t.Errorf("mensaje = %v", body["mensaje"])
	}
	if body["error"] == nil {
		t.Error("expected an error detail")
	}
}

func TestActivarTemporadaDesactivaLasDemas(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2024-2025", "fechaInicio": "2024-09-01", "fechaFin": "2025-06-30", "activa": true,
	})
	wantStatus(t, resp, 201)
	primera := decodeMap(t, resp)

	resp = doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2025-2026", "fechaInicio": "2025-09-01", "fechaFin": "2026-06-30", "activa": true,
	})
	wantStatus(t, resp, 201)

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/temporadas/%d", id(t, primera)), nil)
	wantStatus(t, resp, 200)
	if got := decodeMap(t, resp)["activa"]; got != false {
		t.Errorf("first season still active: activa = %v", got)
	}

	resp = doRequest(t, app, "GET", "/api/temporadas", nil)
	wantStatus(t, resp, 200)
	activas := 0
	for _, temporada := range decodeList(t, resp) {
		if temporada["activa"] == true {
			activas++
		}
	}
	if activas != 1 {
		t.Errorf("active seasons = %d, want 1", activas)
	}
}

func TestActualizarTemporadaActivaExcluyeASiMisma(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2024-2025", "fechaInicio": "2024-09-01", "fechaFin": "2025-06-30", "activa": true,
	})
	primera := decodeMap(t, resp)

	resp = doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2025-2026", "fechaInicio": "2025-09-01", "fechaFin": "2026-06-30", "activa": true,
	})
	segunda := decodeMap(t, resp)

	// Reactivate the first one via update
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/temporadas/%d", id(t, primera)), map[string]interface{}{
		"nombre": "2024-2025", "fechaInicio": "2024-09-01", "fechaFin": "2025-06-30", "activa": true,
	})
	wantStatus(t, resp, 200)
	if got := decodeMap(t, resp)["activa"]; got != true {
		t.Fatalf("updated season not active: activa = %v", got)
	}

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/temporadas/%d", id(t, segunda)), nil)
	if got := decodeMap(t, resp)["activa"]; got != false {
		t.Errorf("second season still active: activa = %v", got)
	}
}

func TestListarTemporadasOrdenadasPorInicio(t *testing.T) {
	app := newTestApp(t)

	doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2023-2024", "fechaInicio": "2023-09-01", "fechaFin": "2024-06-30",
	})
	doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2025-2026", "fechaInicio": "2025-09-01", "fechaFin": "2026-06-30",
	})
	doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2024-2025", "fechaInicio": "2024-09-01", "fechaFin": "2025-06-30",
	})

	resp := doRequest(t, app, "GET", "/api/temporadas", nil)
	wantStatus(t, resp, 200)
	temporadas := decodeList(t, resp)
	if len(temporadas) != 3 {
		t.Fatalf("len = %d, want 3", len(temporadas))
	}
	want := []string{"2025-2026", "2024-2025", "2023-2024"}
	for i, nombre := range want {
		if temporadas[i]["nombre"] != nombre {
			t.Errorf("temporadas[%d] = %v, want %s", i, temporadas[i]["nombre"], nombre)
		}
	}
}

func TestTemporadaNoEncontrada(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "GET", "/api/temporadas/9999", nil)
	wantStatus(t, resp, 404)
	if got := decodeMap(t, resp)["mensaje"]; got != "Temporada no encontrada" {
		t.Errorf("mensaje = %v", got)
	}

	resp = doRequest(t, app, "DELETE", "/api/temporadas/9999", nil)
	wantStatus(t, resp, 404)
}

func TestEliminarTemporada(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/temporadas", map[string]interface{}{
		"nombre": "2025-2026", "fechaInicio": "2025-09-01", "fechaFin": "2026-06-30",
	})
	temporada := decodeMap(t, resp)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/temporadas/%d", id(t, temporada)), nil)
	wantStatus(t, resp, 200)
	if got := decodeMap(t, resp)["mensaje"]; got != "Temporada eliminada correctamente" {
		t.Errorf("mensaje = %v", got)
	}

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/temporadas/%d", id(t, temporada)), nil)
	wantStatus(t, resp, 404)
}
