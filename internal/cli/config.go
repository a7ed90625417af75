package cli

import (
	"os"
	"strconv"

	"github.com/mcoot/auctionclerk/internal/model"
)

// Config holds CLI configuration
type Config struct {
	CSVPath string
	Budget  int
	MyTeam  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		CSVPath: getEnvOrDefault("AUCTIONCLERK_CSV", "salaries.csv"),
		Budget:  getEnvIntOrDefault("AUCTIONCLERK_BUDGET", model.DefaultBudget),
		MyTeam:  getEnvOrDefault("AUCTIONCLERK_MY_TEAM", "Me"),
		Verbose: false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
