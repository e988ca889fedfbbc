// internal/services/helpers_test.go
package services

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tiendago/tienda-backend/internal/database"
)

const defaultTestDSN = "host=localhost port=5432 user=postgres password=postgres dbname=tienda_test sslmode=disable"

// setupTestDB connects to a local Postgres for integration tests and
// skips the test when none is reachable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TIENDA_TEST_DSN"))
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	truncateTables(t, db)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func truncateTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"detalle_ventas", "ventas", "clientes", "productos"} {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
