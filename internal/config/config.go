package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/path/to.sock)
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	JWTSecret            string `env:"JWT_SECRET,required"`
	AccessTokenTTLMin    int    `env:"ACCESS_TOKEN_TTL_MIN" envDefault:"30"`
	RefreshTokenTTLHours int    `env:"REFRESH_TOKEN_TTL_HOURS" envDefault:"24"`

	// Non-localhost origins allowed by CORS, comma separated.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
