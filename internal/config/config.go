package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database DatabaseConfig  `mapstructure:"database"`
	Shift    ShiftConfig     `mapstructure:"shift"`
	Planner  PlannerConfig   `mapstructure:"planner"`
	Machines []MachineConfig `mapstructure:"machines"`
	Reps     []string        `mapstructure:"reps"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN builds the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

// ShiftConfig holds the shift-window policy for the production floor.
type ShiftConfig struct {
	StartHour      int `mapstructure:"start_hour"`
	EndHour        int `mapstructure:"end_hour"`
	StepMinutes    int `mapstructure:"step_minutes"`
	MaxAdvanceDays int `mapstructure:"max_advance_days"`
}

type PlannerConfig struct {
	SetupHours    float64 `mapstructure:"setup_hours"`
	RevenueTarget float64 `mapstructure:"revenue_target"`
	Currency      string  `mapstructure:"currency"`
}

// MachineConfig is one entry of the machine catalog: throughput in
// impressions per hour plus an optional pre-start buffer.
type MachineConfig struct {
	Name        string  `mapstructure:"name"`
	RatePerHour float64 `mapstructure:"rate_per_hour"`
	BufferHours float64 `mapstructure:"buffer_hours"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/planner.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "planner")
	v.SetDefault("database.name", "planner")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("shift.start_hour", 8)
	v.SetDefault("shift.end_hour", 17)
	v.SetDefault("shift.step_minutes", 15)
	v.SetDefault("shift.max_advance_days", 365)
	v.SetDefault("planner.setup_hours", 2.0)
	v.SetDefault("planner.revenue_target", 150000.0)
	v.SetDefault("planner.currency", "GH₵")
	v.SetDefault("machines", defaultMachines())
	v.SetDefault("reps", []string{
		"Mabel Ampofo", "Daphne Sarpong", "Reginald Aidam", "Elizabeth Akoto",
		"Charles Adoo", "Mohammed Seidu Bunyamin", "Christian Mante", "Bertha Tackie",
	})

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("server.port", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultMachines is the shop's machine park with measured throughput rates.
// The die cutter carries an eight hour make-ready buffer and the folder
// gluer two hours of glue setting before a step may start.
func defaultMachines() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "SM102-CX FOUR COLOUR", "rate_per_hour": 8000.0},
		{"name": "SM102-P FIVE COLOUR", "rate_per_hour": 7500.0},
		{"name": "SM 52", "rate_per_hour": 7000.0},
		{"name": "GTO 52 SEMI-AUTO-2 COLOUR", "rate_per_hour": 4500.0},
		{"name": "GTO 52 MANUAL-2 COLOUR", "rate_per_hour": 4000.0},
		{"name": "FOLDING UNIT CONTINUOUS FOLD", "rate_per_hour": 8000.0},
		{"name": "MBO-B30E SINGLE FOLD", "rate_per_hour": 16000.0},
		{"name": "POLAR MACHINE FOR BOOKS", "rate_per_hour": 2000.0},
		{"name": "POLAR MACHINE FOR SHEETS", "rate_per_hour": 50000.0},
		{"name": "3 WAY TRIMMER", "rate_per_hour": 5000.0},
		{"name": "PERFECT BINDING", "rate_per_hour": 500.0},
		{"name": "LAMINATION UNIT", "rate_per_hour": 2500.0},
		{"name": "PEDDLER SADDLE STITCH", "rate_per_hour": 1000.0},
		{"name": "DIE CUTTER", "rate_per_hour": 3000.0, "buffer_hours": 8.0},
		{"name": "FOLDER GLUER", "rate_per_hour": 12000.0, "buffer_hours": 2.0},
	}
}
