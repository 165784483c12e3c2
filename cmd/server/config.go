package main

import (
	"errors"
	"os"
)

type config struct {
	MongoURI string
	Database string
	Port     string
}

// loadConfig reads the server settings from the environment. MONGO_URI
// is the one required setting; its absence is fatal at startup.
func loadConfig() (config, error) {
	cfg := config{
		MongoURI: os.Getenv("MONGO_URI"),
		Database: os.Getenv("MONGO_DB"),
		Port:     os.Getenv("PORT"),
	}

	if cfg.MongoURI == "" {
		return config{}, errors.New("MONGO_URI is not set")
	}

	if cfg.Database == "" {
		cfg.Database = "travelbooking"
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}

	return cfg, nil
}
