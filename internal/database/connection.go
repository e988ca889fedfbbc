// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tiendago/tienda-backend/internal/config"
	"github.com/tiendago/tienda-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Producto{},
		&models.Cliente{},
		&models.Venta{},
		&models.DetalleVenta{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Producto indexes
		"CREATE INDEX IF NOT EXISTS idx_productos_nombre ON productos(nombre)",
		"CREATE INDEX IF NOT EXISTS idx_productos_created_at ON productos(created_at DESC)",

		// Cliente indexes
		"CREATE INDEX IF NOT EXISTS idx_clientes_email ON clientes(email)",

		// Venta indexes
		"CREATE INDEX IF NOT EXISTS idx_ventas_email_cliente ON ventas(email_cliente)",
		"CREATE INDEX IF NOT EXISTS idx_ventas_fecha ON ventas(fecha DESC)",

		// DetalleVenta indexes
		"CREATE INDEX IF NOT EXISTS idx_detalle_ventas_venta ON detalle_ventas(venta_id)",
		"CREATE INDEX IF NOT EXISTS idx_detalle_ventas_producto ON detalle_ventas(producto_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed demo catalog data for local development
func SeedDemoData(db *gorm.DB) error {
	logrus.Info("Seeding demo data...")

	var productCount int64
	if err := db.Model(&models.Producto{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount > 0 {
		logrus.Info("Catalog is not empty, skipping demo seed")
		return nil
	}

	demoProducts := []models.Producto{
		{
			Nombre:      "Mate Imperial",
			Descripcion: "Mate de calabaza forrado en cuero con virola de alpaca",
			Precio:      decimal.NewFromFloat(25.50),
			Stock:       30,
			ImagenURL:   "https://example.com/img/mate-imperial.jpg",
		},
		{
			Nombre:      "Bombilla Pico de Loro",
			Descripcion: "Bombilla de acero inoxidable con filtro desmontable",
			Precio:      decimal.NewFromFloat(8.75),
			Stock:       120,
			ImagenURL:   "https://example.com/img/bombilla.jpg",
		},
		{
			Nombre:      "Yerba Organica 1kg",
			Descripcion: "Yerba mate organica sin palo, estacionada 24 meses",
			Precio:      decimal.NewFromFloat(12.00),
			Stock:       200,
			ImagenURL:   "https://example.com/img/yerba.jpg",
		},
		{
			Nombre:      "Termo Acero 1L",
			Descripcion: "Termo de acero inoxidable con pico cebador",
			Precio:      decimal.NewFromFloat(42.90),
			Stock:       45,
			ImagenURL:   "https://example.com/img/termo.jpg",
		},
	}

	if err := db.Create(&demoProducts).Error; err != nil {
		return fmt.Errorf("failed to seed demo products: %w", err)
	}

	logrus.WithField("count", len(demoProducts)).Info("Demo data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
