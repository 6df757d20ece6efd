package main

import (
	"fmt"

	"github.com/rudracore/client-portal/internal/app"
	"github.com/rudracore/client-portal/internal/config"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/storage"
)

func main() {
	// load config
	config := config.NewConfig()
	// initialize the logger
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	// pick the record store: Postgres when a DSN is configured,
	// otherwise an in-process store for local runs
	var kv storage.KVStore
	if config.Server.DatabaseDSN != "" {
		db, err := storage.NewDatabase(config.Server.DatabaseDSN)
		if err != nil {
			logger.Panic("can't create database:", err)
		}
		if err := db.Initialize(); err != nil {
			logger.Panic("can't initialize database:", err)
		}
		defer db.Close()
		kv = db
	} else {
		logger.Warn("No database DSN configured, records are kept in memory")
		kv = storage.NewMemory()
	}

	app.Run(config, storage.NewStorage(kv))
}
