package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Slots SlotsConfig
}

type AppConfig struct {
	Port     string
	Env      string
	TimeZone string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SlotsConfig controls how appointment slots are materialized from
// working-hours windows.
type SlotsConfig struct {
	HorizonWeeks int
	Duration     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	timeZone := viper.GetString("APP_TIMEZONE")
	if timeZone == "" {
		timeZone = "UTC"
	}

	horizonWeeks := viper.GetInt("SLOT_HORIZON_WEEKS")
	if horizonWeeks <= 0 {
		horizonWeeks = 4
	}

	slotDuration, err := time.ParseDuration(viper.GetString("SLOT_DURATION"))
	if err != nil || slotDuration <= 0 {
		slotDuration = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			TimeZone: timeZone,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Slots: SlotsConfig{
			HorizonWeeks: horizonWeeks,
			Duration:     slotDuration,
		},
	}

	return config, nil
}
