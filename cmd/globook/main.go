package main

import (
	"errors"
	"io/fs"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/globook/globook-backend/globook/app"
	"github.com/globook/globook-backend/globook/config"
)

//	@title		Globook API
//	@version	1.0
//	@description	Tracks free-roaming book copies and where they were caught.
//	@BasePath	/

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithReadTimeout(10*time.Second),
		config.WithWriteTimeout(time.Minute),
	)
	if cfg.Debug {
		cfg.Log.LogLevel = zapcore.DebugLevel
		cfg.Print()
	}

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
