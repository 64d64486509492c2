// Package config читает конфигурацию бинарей из переменных окружения (и .env).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Session — явный контекст сессии оператора, передаваемый консоли при
// конструировании. Читается один раз на старте, без глобального состояния.
type Session struct {
	BaseURL string
	Token   string
}

// Console — конфигурация операторской консоли.
type Console struct {
	Session     Session
	HTTPTimeout time.Duration
}

// Server — конфигурация сервиса аккаунтов. Пустой DSN означает
// хранилище в памяти.
type Server struct {
	Port string
	DSN  string
	Env  string
}

// LoadConsole читает конфигурацию консоли из окружения.
func LoadConsole() (*Console, error) {
	_ = godotenv.Load()

	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:8000/api"
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse HTTP_TIMEOUT: %w", err)
		}
		timeout = d
	}

	return &Console{
		Session:     Session{BaseURL: base, Token: os.Getenv("API_TOKEN")},
		HTTPTimeout: timeout,
	}, nil
}

// LoadServer читает конфигурацию сервиса аккаунтов из окружения.
func LoadServer() (*Server, error) {
	_ = godotenv.Load()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &Server{
		Port: port,
		DSN:  os.Getenv("DB_DSN"),
		Env:  env,
	}, nil
}
