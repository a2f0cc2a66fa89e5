// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 服務設定，皆由環境變數載入
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL,required"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	WorkerCount int           `env:"WORKER_COUNT" envDefault:"1"`
	Redis       Redis         `envPrefix:"REDIS_"`
	SMS         SMS           `envPrefix:"SMS_"`
}

// Redis 快取連線參數
type Redis struct {
	Addr     string `env:"ADDR,required"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// SMS 訂位確認簡訊參數，APIURL 留空則僅記錄不發送
type SMS struct {
	APIURL string `env:"API_URL"`
	APIKey string `env:"API_KEY"`
}

// NewConfig 先讀取 .env（若存在），再由環境變數解析設定
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
