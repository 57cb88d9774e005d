package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	Port       string
	StaticDir  string
}

// fileConfig mirrors the optional config.yaml layout.
type fileConfig struct {
	Server struct {
		Port      string `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	Database struct {
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
}

// LoadConfig reads config.yaml if present, then lets environment
// variables (and .env) override it.
func LoadConfig() Config {
	_ = godotenv.Load()

	var fc fileConfig
	if data, err := os.ReadFile("config.yaml"); err == nil {
		_ = yaml.Unmarshal(data, &fc)
	}

	return Config{
		DBUser:     getEnv("DB_USER", fc.Database.User),
		DBPassword: getEnv("DB_PASSWORD", fc.Database.Password),
		DBHost:     getEnv("DB_HOST", firstNonEmpty(fc.Database.Host, "localhost")),
		DBPort:     getEnv("DB_PORT", firstNonEmpty(fc.Database.Port, "5432")),
		DBName:     getEnv("DB_NAME", firstNonEmpty(fc.Database.Name, "property_research")),
		Port:       getEnv("PORT", firstNonEmpty(fc.Server.Port, "8000")),
		StaticDir:  getEnv("STATIC_DIR", firstNonEmpty(fc.Server.StaticDir, "propbase/public")),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
