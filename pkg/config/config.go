package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Data       DataConfig
	Log        LogConfig
	Enrollment EnrollmentConfig
	Reports    ReportsConfig
}

// DataConfig locates the flat-file data directory and its backups.
type DataConfig struct {
	Dir       string
	BackupDir string
}

type LogConfig struct {
	Level  string
	Format string
}

// EnrollmentConfig tunes the enrollment business rules.
type EnrollmentConfig struct {
	MaxCredits int
}

// ReportsConfig configures rendered report output (PDF/CSV exports).
type ReportsConfig struct {
	StorageDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Data = DataConfig{
		Dir:       v.GetString("DATA_DIR"),
		BackupDir: v.GetString("BACKUP_DIR"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	maxCredits := v.GetInt("MAX_CREDITS")
	if maxCredits <= 0 {
		maxCredits = 27
	}
	cfg.Enrollment = EnrollmentConfig{MaxCredits: maxCredits}

	cfg.Reports = ReportsConfig{
		StorageDir: v.GetString("REPORTS_STORAGE_DIR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("BACKUP_DIR", "./backups")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("MAX_CREDITS", 27)

	v.SetDefault("REPORTS_STORAGE_DIR", "./exports")
}
