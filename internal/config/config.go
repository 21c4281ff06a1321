package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Env string

	// DBType selects the gorm driver, "postgres" or "sqlite".
	DBType string
	DBDSN  string

	RedisAddr string
	// CacheCodec names the payload codec, one of gzip, brotli, lz4 or
	// nop.
	CacheCodec string

	KafkaBrokers string
	AuditTopic   string

	// GraphWarmCron is the robfig/cron schedule of the keyword graph
	// warm task.
	GraphWarmCron string
}

// LoadConfig reads the process environment, .env included via autoload.
func LoadConfig() *Config {
	return &Config{
		Env:           getEnv("ENV", "dev"),
		DBType:        getEnv("DB_TYPE", "sqlite"),
		DBDSN:         getEnv("DB_DSN", ".db/logbook.db"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		CacheCodec:    getEnv("CACHE_CODEC", "gzip"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", ""),
		AuditTopic:    getEnv("AUDIT_TOPIC", "logbook.audit"),
		GraphWarmCron: getEnv("GRAPH_WARM_CRON", "@every 1h"),
	}
}

// GetDb opens the configured database. Duplicate key violations come
// back as gorm.ErrDuplicatedKey on both drivers.
func GetDb(cnf *Config) *gorm.DB {
	gormConfig := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	var err error
	switch cnf.DBType {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cnf.DBDSN), gormConfig)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cnf.DBDSN), gormConfig)
	default:
		logrus.Fatalf("unknown db type: %v", cnf.DBType)
	}
	if err != nil {
		logrus.Fatalf("failed to connect to db: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
