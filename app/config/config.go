package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
)

type Config struct {
	DB    *sql.DB
	Redis *redis.Client
	Env   EnvConfig
}

// EnvConfig holds all settings read from the environment.
type EnvConfig struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"timetable-magic-secret-key"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"timetable_magic"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	RedisAddr string `env:"REDIS_ADDR"`
}

var AppConfig *Config

// InitDB loads environment configuration, connects to Postgres and,
// when REDIS_ADDR is set, to Redis. Redis failures are non-fatal: the
// app runs without the grid cache.
func InitDB() {
	var envCfg EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		log.Fatal("Failed to parse environment configuration:", err)
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		envCfg.DBHost, envCfg.DBPort, envCfg.DBUser, envCfg.DBName, envCfg.DBSSLMode)
	if envCfg.DBPassword != "" {
		psqlInfo += fmt.Sprintf(" password=%s", envCfg.DBPassword)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Printf("Check DB_HOST/DB_PORT/DB_USER/DB_NAME (database %q must exist)", envCfg.DBName)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:  db,
		Env: envCfg,
	}
	log.Println("Database connected successfully")

	if envCfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: envCfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("Redis connection failed, grid caching disabled: %v", err)
		} else {
			AppConfig.Redis = rdb
			log.Println("Redis connected, grid caching enabled")
		}
	} else {
		log.Println("REDIS_ADDR not set, grid caching disabled")
	}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// GetRedis returns the Redis client, or nil when caching is disabled.
func GetRedis() *redis.Client {
	return AppConfig.Redis
}

// GetJWTSecret returns the signing key for session tokens.
func GetJWTSecret() []byte {
	return []byte(AppConfig.Env.JWTSecret)
}
