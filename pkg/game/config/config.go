// Package config reads the game's settings from the environment, after
// loading an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultGameLogPath   = "gamelog.json"
	DefaultSQLiteLogPath = "gamelog.db"
	DefaultGameLogDriver = "json"
	DefaultLogLevel      = "info"
	DefaultLogFile       = "darkgrid.log"
	DefaultLanguage      = "en"
)

// Config holds the settings of one run
type Config struct {
	GameLogPath   string
	GameLogDriver string
	LogLevel      string
	LogFile       string
	Language      string
	Seed          int64
	RawInput      bool
	DumpDir       string
}

// Load reads .env files (a missing file is ignored) and then the process
// environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() Config {
	driver := getEnv("GAMELOG_DRIVER", DefaultGameLogDriver)
	return Config{
		GameLogPath:   getEnv("DARKGRID_LOG_PATH", GameLogPathFor(driver)),
		GameLogDriver: driver,
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFile:       getEnv("LOG_FILE", DefaultLogFile),
		Language:      getEnv("DARKGRID_LANG", DefaultLanguage),
		Seed:          getEnvInt64("DARKGRID_SEED", 0),
		RawInput:      getEnvBool("DARKGRID_RAW_INPUT", true),
		DumpDir:       os.Getenv("DARKGRID_DUMP_DIR"),
	}
}

// GameLogPathFor returns the default game log file for a backend
func GameLogPathFor(driver string) string {
	if driver == "sqlite" {
		return DefaultSQLiteLogPath
	}
	return DefaultGameLogPath
}

// SetGameLogDriver switches the backend. A path still at the old backend's
// default follows it to the new one; an explicit path is kept.
func (c *Config) SetGameLogDriver(driver string) {
	if c.GameLogPath == "" || c.GameLogPath == GameLogPathFor(c.GameLogDriver) {
		c.GameLogPath = GameLogPathFor(driver)
	}
	c.GameLogDriver = driver
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(k), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
