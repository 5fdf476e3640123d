package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DataFileName   = "students.txt"
	MaxUploadBytes = 1 << 20 // 1MB
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	SessionKey     string
	DataFile       string
}

// Load reads an optional .env file and the ROSTER_* variables. The storage
// location is never taken from the environment; it sits next to the
// executable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Ignoring unreadable .env file:", err)
	}

	dataFile, err := DefaultDataFile()
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:           getEnv("ROSTER_ADDR", ":8080"),
		AllowedOrigins: splitList(getEnv("ROSTER_ALLOWED_ORIGINS", "http://localhost:3000")),
		SessionKey:     os.Getenv("ROSTER_SESSION_KEY"),
		DataFile:       dataFile,
	}, nil
}

// DefaultDataFile resolves students.txt in the executable's directory.
func DefaultDataFile() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DataFileName), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
