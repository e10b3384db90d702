package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string
	UploadDir string

	JavaBin         string
	TabulaJarPath   string
	TabulaTimeoutMs int

	DefaultPricelist string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "scanpdf.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		UploadDir: getEnv("UPLOAD_DIR", filepath.Join(cwd, "uploads")),

		JavaBin:         getEnv("JAVA_BIN", "java"),
		TabulaJarPath:   getEnv("TABULA_JAR_PATH", filepath.Join(cwd, "tabula", "tabula.jar")),
		TabulaTimeoutMs: getEnvInt("TABULA_TIMEOUT_MS", 120000),

		DefaultPricelist: getEnv("DEFAULT_PRICELIST", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
