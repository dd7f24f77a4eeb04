// handlers/main_test.go - shared test harness
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"clubsanagustin/database"
	"clubsanagustin/models"
)

// newTestApp builds a Fiber app with all routes mounted on a fresh
// in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Temporada{},
		&models.Usuario{},
		&models.Equipo{},
		&models.Jugador{},
		&models.TemporadaAnterior{},
		&models.Asistencia{},
		&models.Valoracion{},
		&models.ScoutingRival{},
		&models.Objetivo{},
		&models.ReunionTecnica{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	database.SetDB(db)
	InitServices()

	app := fiber.New()
	RegisterRoutes(app.Group("/api"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return out
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body: %s)", resp.StatusCode, want, body)
	}
}

// id extracts the numeric identifier from a decoded JSON object.
func id(t *testing.T, obj map[string]interface{}) uint {
	t.Helper()
	raw, ok := obj["id"].(float64)
	if !ok {
		t.Fatalf("response has no numeric id: %v", obj)
	}
	return uint(raw)
}
