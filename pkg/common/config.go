package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBType       string
	DBPath       string
	DBDSN        string
	HttpHostPort string
	GrpcHostPort string
	DefaultRate  float64
	DefaultBurst int
	JwtSecret    string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		GetLogger().Warn("no .env file loaded, using process environment only")
	}

	cfg := &Config{
		DBType:       strings.TrimSpace(os.Getenv(EnvKeyCCTVDBType)),
		DBPath:       strings.TrimSpace(os.Getenv(EnvKeyCCTVDbPath)),
		DBDSN:        strings.TrimSpace(os.Getenv(EnvKeyCCTVDbDSN)),
		HttpHostPort: strings.TrimSpace(os.Getenv(EnvKeyCCTVHttpHostPort)),
		GrpcHostPort: strings.TrimSpace(os.Getenv(EnvKeyCCTVGrpcHostPort)),
		JwtSecret:    os.Getenv(EnvKeyCCTVJwtSecret),
	}

	if cfg.DBType == "" {
		cfg.DBType = "file"
	}

	if cfg.HttpHostPort == "" {
		// fallback to default http port
		cfg.HttpHostPort = ":1080"
	}

	var err error
	if cfg.DefaultRate, err = strconv.ParseFloat(os.Getenv(EnvKeyCCTVDefaultRate), 64); err != nil {
		return nil, fmt.Errorf("invalid %s, or not set, should be a float64 value", EnvKeyCCTVDefaultRate)
	}

	var burst int64
	if burst, err = strconv.ParseInt(os.Getenv(EnvKeyCCTVDefaultBurst), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid %s, or not set, should be an int value", EnvKeyCCTVDefaultBurst)
	}
	cfg.DefaultBurst = int(burst)

	if cfg.JwtSecret == "" {
		return nil, fmt.Errorf("%s is required", EnvKeyCCTVJwtSecret)
	}

	if (cfg.DBType == "postgres" || cfg.DBType == "mysql") && cfg.DBDSN == "" {
		return nil, fmt.Errorf("%s is required for %s", EnvKeyCCTVDbDSN, cfg.DBType)
	}

	return cfg, nil
}
