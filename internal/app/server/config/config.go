package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddress   string
	DurationUnit    string
	ShowVMMetrics   bool
	DatabaseDSN     string
	ArchiveInterval time.Duration
}

func NewConfig() *Config {
	cfg := &Config{
		ServerAddress:   "localhost:8080",
		DurationUnit:    "milliseconds",
		ShowVMMetrics:   true,
		DatabaseDSN:     "",
		ArchiveInterval: 60 * time.Second,
	}

	// Parse flags
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address")
	flag.StringVar(&cfg.DurationUnit, "u", cfg.DurationUnit, "Duration unit for timer output")
	flag.BoolVar(&cfg.ShowVMMetrics, "vm", cfg.ShowVMMetrics, "Include process-level runtime metrics")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Postgres DSN for snapshot archiving (empty disables)")
	archiveInterval := flag.Int("i", int(cfg.ArchiveInterval.Seconds()), "Snapshot archive interval in seconds")
	flag.Parse()

	// Override with environment variables if present
	if envAddress := os.Getenv("ADDRESS"); envAddress != "" {
		cfg.ServerAddress = envAddress
	}

	if envUnit := os.Getenv("DURATION_UNIT"); envUnit != "" {
		cfg.DurationUnit = envUnit
	}

	if envShowVM := os.Getenv("SHOW_VM_METRICS"); envShowVM != "" {
		cfg.ShowVMMetrics, _ = strconv.ParseBool(envShowVM)
	}

	if envDSN := os.Getenv("DATABASE_DSN"); envDSN != "" {
		cfg.DatabaseDSN = envDSN
	}

	if envInterval := os.Getenv("ARCHIVE_INTERVAL"); envInterval != "" {
		if ai, err := strconv.Atoi(envInterval); err == nil {
			cfg.ArchiveInterval = time.Duration(ai) * time.Second
		}
	} else {
		cfg.ArchiveInterval = time.Duration(*archiveInterval) * time.Second
	}

	return cfg
}
