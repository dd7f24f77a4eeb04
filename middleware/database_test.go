// middleware/database_test.go
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clubsanagustin/database"
)

func TestRequireDatabaseDegradedMode(t *testing.T) {
	database.SetDB(nil)
	t.Cleanup(func() { database.SetDB(nil) })

	app := fiber.New()
	app.Use(RequireDatabase())
	app.Get("/datos", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/datos", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	database.SetDB(conn)

	resp, err = app.Test(httptest.NewRequest("GET", "/datos", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 once the database is back", resp.StatusCode)
	}
}
