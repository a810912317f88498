package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full schema. gen_random_uuid() requires PostgreSQL 13+.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}

	return db, nil
}

// RunMigrations creates / updates all tables. Shared with the integration
// tests, que levantan un Postgres efímero y necesitan el mismo esquema.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.ItemInventario{},
		&model.ReglaPrecio{},
		&model.ImportacionLote{},
		&model.Cotizacion{},
		&model.CotizacionItem{},
	); err != nil {
		return err
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// índice parcial para la bandeja de revisión manual del importador
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_items_rescatadas') THEN
		    CREATE INDEX idx_items_rescatadas
		        ON items_inventario (created_at)
		        WHERE rescatada = true AND activo = true;
		  END IF;
		END $$`,
		// búsqueda por medida dentro de la descripción libre
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_items_dimensiones') THEN
		    CREATE INDEX idx_items_dimensiones
		        ON items_inventario (ancho, perfil, rin)
		        WHERE activo = true;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
