package main

import (
	"log"
	"os"

	"github.com/agiletchat/auth-service/config"
	"github.com/joho/godotenv"

	"github.com/agiletchat/auth-service/internal/app"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	if workingDir, err := os.Getwd(); err != nil {
		log.Fatal("os.Getwd() failed with error - " + err.Error())
	} else {
		/* go.env нужен только для локального запуска,
		 * в контейнере переменные приходят из окружения */
		if _, err := os.Stat(workingDir + "/go.env"); err == nil {
			if err := godotenv.Load(workingDir + "/go.env"); err != nil {
				log.Fatal("Error loading .env file; Error - " + err.Error())
			}
		}
		//config.WriteTemplate(workingDir + "/config.json")
		cfg = config.MustLoad(workingDir + "/config.json")
	}

	zapConfig := zap.NewProductionConfig()
	if cfg.Env == "DEV" {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zapConfig.Development = true
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapConfig.Development = false
	}
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatal("Failed to build logger - " + err.Error())
	}

	if err = app.Run(logger, cfg); err != nil {
		logger.Fatal("Server have been stopped with error - " + err.Error())
	} else {
		logger.Info("Server have been stopped.")
	}
}
