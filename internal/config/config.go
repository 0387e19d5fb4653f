package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL           string `env:"DATABASE_URL"`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret             string `env:"JWT_SECRET,required"`
	SubmitTokenTTLMinutes int    `env:"SUBMIT_TOKEN_TTL_MINUTES" envDefault:"30"`
	CodeTTLHours          int    `env:"CODE_TTL_HOURS" envDefault:"72"`
	AdminKeyHash          string `env:"ADMIN_KEY_HASH"`
	CORSAllowedOrigin     string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
