// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"clubsanagustin/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

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
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates the indexes AutoMigrate does not derive from tags.
// The composite unique index on asistencias(jugador_id, fecha) comes from
// the model tags; these are plain lookup indexes.
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_jugadores_apellidos ON jugadores(apellidos, nombre)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_asistencias_fecha ON asistencias(fecha DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_objetivos_estado ON objetivos(estado, fecha_creacion DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_scouting_valoracion ON scouting_rivales(valoracion_general DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_usuarios_nombre ON usuarios(nombre_usuario)")
}
