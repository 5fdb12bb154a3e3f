package config

import (
	"context"
	"log"
	"time"

	"solutions-admin/migrations"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/viper"
)

var DB *sqlx.DB

// InitConfig loads configuration from the environment, with an optional .env
// file for local development. The signing secret has no fallback: a missing
// JWT_SECRET is a startup failure.
func InitConfig() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3030")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	if viper.GetString("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is required and has no default")
	}
}

// InitDB connects the shared Postgres pool and applies pending migrations.
func InitDB() {
	dsn := viper.GetString("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	var err error
	DB, err = sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	maxOpenConns := viper.GetInt("DB_MAX_OPEN_CONNS")
	if maxOpenConns == 0 {
		maxOpenConns = 25
	}

	maxIdleConns := viper.GetInt("DB_MAX_IDLE_CONNS")
	if maxIdleConns == 0 {
		maxIdleConns = 10
	}

	connMaxLifetime := viper.GetDuration("DB_CONN_MAX_LIFETIME")
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}

	DB.SetMaxOpenConns(maxOpenConns)
	DB.SetMaxIdleConns(maxIdleConns)
	DB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(DB.DB, "."); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("Database connected (max_open=%d, max_idle=%d, max_lifetime=%s)",
		maxOpenConns, maxIdleConns, connMaxLifetime)
}

// CloseDB closes the database connection gracefully.
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
