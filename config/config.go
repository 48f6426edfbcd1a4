package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jcamargo/panel-usuarios-backend/models"
	"github.com/jcamargo/panel-usuarios-backend/services"
	"github.com/jcamargo/panel-usuarios-backend/store"
)

var (
	Store    store.Store
	API      *services.MockAPI
	Auth     *services.AuthService
	Sessions *services.SessionManager

	// Driver activo, para el health check
	Driver string
)

// Init arma el store según STORE_DRIVER (memory por defecto, postgres para
// una base real), los servicios encima, y restaura las sesiones persistidas.
func Init() {
	Driver = os.Getenv("STORE_DRIVER")
	if Driver == "" {
		Driver = "memory"
	}

	switch Driver {
	case "postgres":
		Store = store.NewGormStore(initDB())
	case "memory":
		m := store.NewMemoryStore()
		m.Seed()
		Store = m
	default:
		log.Fatal("STORE_DRIVER desconocido: ", Driver)
	}

	API = &services.MockAPI{Store: Store}
	Auth = &services.AuthService{Store: Store}

	archivo := os.Getenv("SESSION_FILE")
	if archivo == "" {
		archivo = "sessions.json"
	}
	Sessions = services.NewSessionManager(Auth, archivo)
	if err := Sessions.Restore(); err != nil {
		// Sesiones ilegibles no impiden arrancar, solo obligan a loguearse de nuevo
		log.Println("No se pudieron restaurar las sesiones:", err)
	}

	log.Println("Store inicializado con driver:", Driver)
}

func initDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Bogota",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal("No se pudo conectar a la base de datos: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("No se pudo obtener sql.DB de gorm: ", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = db.AutoMigrate(
		&models.User{},
		&models.Study{},
		&models.Address{},
	)
	if err != nil {
		log.Fatal("Error en AutoMigrate: ", err)
	}
	log.Println("PostgreSQL conectado y migrado")

	return db
}
