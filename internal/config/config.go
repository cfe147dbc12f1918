// Package config loads the server configuration from environment
// variables. Apart from the logging setup, nothing else in the codebase
// reads the environment directly.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// Port is the HTTP listen port.
	// Environment variable: PORT
	Port int `koanf:"PORT"`

	// DBPath is the SQLite database file path.
	// Environment variable: DB_PATH
	DBPath string `koanf:"DB_PATH"`

	// JWTSecret signs session tokens. Required.
	// Environment variable: JWT_SECRET
	JWTSecret string `koanf:"JWT_SECRET"`

	// JWTTTLHours is the session token lifetime in hours.
	// Environment variable: JWT_TTL_HOURS
	JWTTTLHours int `koanf:"JWT_TTL_HOURS"`

	// WhatsAppURL is the outbound provider endpoint. When empty,
	// replies are returned in the webhook response only.
	// Environment variable: WHATSAPP_URL
	WhatsAppURL string `koanf:"WHATSAPP_URL"`

	// WhatsAppToken is the provider bearer token.
	// Environment variable: WHATSAPP_TOKEN
	WhatsAppToken string `koanf:"WHATSAPP_TOKEN"`

	// WaterDefaultML is the volume logged by "agua" without an argument.
	// Environment variable: WATER_DEFAULT_ML
	WaterDefaultML float64 `koanf:"WATER_DEFAULT_ML"`

	// WaterGoalML is the daily water goal used for progress replies.
	// Environment variable: WATER_GOAL_ML
	WaterGoalML float64 `koanf:"WATER_GOAL_ML"`

	// RecentTxLimit caps the chat "transacoes" listing.
	// Environment variable: RECENT_TX_LIMIT
	RecentTxLimit int `koanf:"RECENT_TX_LIMIT"`

	// NamePrefix prefixes synthesized names of lazily created chat users.
	// Environment variable: DEFAULT_NAME_PREFIX
	NamePrefix string `koanf:"DEFAULT_NAME_PREFIX"`
}

// Load reads configuration from the environment, applies defaults and
// validates required values.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.DBPath == "" {
		c.DBPath = "./data/financas.db"
	}
	if c.JWTTTLHours == 0 {
		c.JWTTTLHours = 24
	}
	if c.WaterDefaultML == 0 {
		c.WaterDefaultML = 200
	}
	if c.WaterGoalML == 0 {
		c.WaterGoalML = 2000
	}
	if c.RecentTxLimit == 0 {
		c.RecentTxLimit = 10
	}
	if c.NamePrefix == "" {
		c.NamePrefix = "Usuário"
	}
}
