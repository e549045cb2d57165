package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL             string `env:"DATABASE_URL,required"`
	StaticDir               string `env:"STATIC_DIR" envDefault:"static"`
	AdminToken              string `env:"ADMIN_TOKEN"`
	RedisAddr               string `env:"REDIS_ADDR"`
	RedisPassword           string `env:"REDIS_PASSWORD"`
	RedisDB                 int    `env:"REDIS_DB" envDefault:"0"`
	SubmitRateMax           int    `env:"SUBMIT_RATE_MAX" envDefault:"10"`
	SubmitRateWindowMinutes int    `env:"SUBMIT_RATE_WINDOW_MINUTES" envDefault:"1"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
