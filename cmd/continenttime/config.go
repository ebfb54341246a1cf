package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"lufia.org/pkg/residency"
)

// Configは環境変数から読む設定
type Config struct {
	// 集計する年。未設定なら今年
	Year int `env:"CONTINENTTIME_YEAR"`

	// 大陸を省略した滞在に使う大陸
	Continent residency.Continent `env:"CONTINENTTIME_CONTINENT"`

	Verbose bool `env:"CONTINENTTIME_VERBOSE"`
}

// loadConfigは既定値に環境変数を上書きした設定を返す
func loadConfig(now time.Time) (Config, error) {
	cfg := Config{
		Year:      now.Year(),
		Continent: residency.DefaultContinent,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
