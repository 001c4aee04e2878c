package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	// LogDir also writes session logs to files when set
	LogDir      string `env:"LOG_DIR"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"rogue-mods"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	// APIKey protects the HTTP API when set
	APIKey string `env:"API_KEY"`
	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Save store backend
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory" validate:"oneof=memory postgres redis"`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"roguemods"`
	DBMaxConns int32  `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"min=0"`

	GameDataPath string `env:"GAMEDATA_PATH" envDefault:"configs/gamedata/gamedata.json" validate:"required"`

	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"256" validate:"min=1"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m" validate:"gt=0"`
	CommitWorkers    int           `env:"COMMIT_WORKERS" envDefault:"4" validate:"min=1"`
	CommitTimeout    time.Duration `env:"COMMIT_TIMEOUT" envDefault:"5s" validate:"gt=0"`

	Mods Mods `envPrefix:"MOD_"`
}

// Mods holds the gameplay override knobs. Services copy it by value so a
// setting change never affects an operation already in progress.
type Mods struct {
	ShinyModifier         int  `env:"SHINY" envDefault:"1" validate:"min=1"`
	HiddenAbilityModifier int  `env:"HIDDEN_ABILITY" envDefault:"1" validate:"min=1"`
	InfiniteBalls         bool `env:"INFINITE_BALLS"`
	InfiniteVouchers      bool `env:"INFINITE_VOUCHERS"`
	CatchTrainerPokemon   bool `env:"CATCH_TRAINER_POKEMON"`
	// CatchTrainerRestricted limits trainer catches when CatchTrainerPokemon is on
	CatchTrainerRestricted bool    `env:"CATCH_TRAINER_RESTRICTED" envDefault:"true"`
	OverrideEggHatchWaves  bool    `env:"WAVE_EGG_HATCH"`
	EggRarity              int     `env:"EGG_RARITY" envDefault:"1" validate:"min=1"`
	EggSpeciesPity         int     `env:"EGG_SPECIES_PITY" envDefault:"9" validate:"min=0"`
	CandyCostMultiplier    float64 `env:"CANDY_COST_MULTIPLIER" envDefault:"1" validate:"gte=0"`
	RegenChance            int     `env:"REGEN_CHANCE" envDefault:"0" validate:"min=0,max=100"`
}

// DefaultMods returns the knob values used when nothing is configured
func DefaultMods() Mods {
	return Mods{
		ShinyModifier:          1,
		HiddenAbilityModifier:  1,
		CatchTrainerRestricted: true,
		EggRarity:              1,
		EggSpeciesPity:         9,
		CandyCostMultiplier:    1,
	}
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
