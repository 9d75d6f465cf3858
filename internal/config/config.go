package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr        string         `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration  `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	Log             LogConfig      `envconfig:"LOG"`
	Database        DatabaseConfig `envconfig:"DB"`
	Auth            AuthConfig
	CORS            CORSConfig `envconfig:"CORS"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	User         string `envconfig:"USER" default:"matchmake"`
	Password     string `envconfig:"PASSWORD" default:"matchmake"`
	DBName       string `envconfig:"NAME" default:"matchmake"`
	SSLMode      string `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
}

type AuthConfig struct {
	// JWTSecret - ключ HS256, которым провайдер идентичности подписывает токены команд
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// DSN собирает строку подключения в формате key=value
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
