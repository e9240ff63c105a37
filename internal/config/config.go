package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	APIBaseURL string
	DBDSN      string
	BillDir    string
	TokenKey   string // hex-encoded 32-byte key sealing the stored bearer token
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	api := os.Getenv("API_BASE_URL")
	if api == "" {
		api = "http://localhost:3000/api"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "petpos.db" // sqlite file in project root
	}
	billDir := os.Getenv("BILL_DIR")
	if billDir == "" {
		billDir = "./bills"
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		// Dev fallback only; set TOKEN_KEY in deployments.
		tokenKey = "6465762d6f6e6c792d746f6b656e2d6b65792d33322d62797465732121212121"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./petpos.log" // default log sink in project root
	}

	cfg := Config{Port: port, APIBaseURL: api, DBDSN: dsn, BillDir: billDir, TokenKey: tokenKey, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s DB_DSN=%s BILL_DIR=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.DBDSN, cfg.BillDir, cfg.LogFile)
	return cfg
}
