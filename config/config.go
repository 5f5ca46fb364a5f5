package config

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

type Config struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Env         string `json:"-"`
	DatabaseUrl string `json:"-"`
	Secret      []byte `json:"-"`
	Lifetime    struct {
		/* Время жизни токена в секундах */
		Token int64 `json:"token"`
	} `json:"lifetime"`
	Pool struct {
		MaxOpenConns int `json:"max_open_conns"`
		MaxIdleConns int `json:"max_idle_conns"`
	} `json:"pool"`
}

func (cfg *Config) TokenLifetime() time.Duration {
	if cfg.Lifetime.Token <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(cfg.Lifetime.Token) * time.Second
}

func MustLoad(filePath string) *Config {
	cfg := &Config{}
	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		log.Fatal("Config at \"" + filePath + "\" not found.")
	}
	err = json.Unmarshal(data, cfg)
	if err != nil {
		log.Fatal("Config parsing failed with error - " + err.Error())
	}
	cfg.Env = os.Getenv("GO_ENV")
	cfg.DatabaseUrl = os.Getenv("DATABASE_URL")
	cfg.Secret = []byte(os.Getenv("SECRET"))
	return cfg
}

func WriteTemplate(filePath string) {
	data, err := json.MarshalIndent(&Config{}, "", "  ")
	if err != nil {
		log.Fatal("Config parsing failed with error - " + err.Error())
	}
	err = os.WriteFile(filePath, data, 0666)
	if err != nil {
		log.Fatal("Failed to save config tempate with error - " + err.Error())
	}
}
