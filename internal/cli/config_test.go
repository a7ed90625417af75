package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/auctionclerk/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("AUCTIONCLERK_CSV", "")
	t.Setenv("AUCTIONCLERK_BUDGET", "")
	t.Setenv("AUCTIONCLERK_MY_TEAM", "")

	cfg := DefaultConfig()

	assert.Equal(t, "salaries.csv", cfg.CSVPath)
	assert.Equal(t, model.DefaultBudget, cfg.Budget)
	assert.Equal(t, "Me", cfg.MyTeam)
	assert.False(t, cfg.Verbose)
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("AUCTIONCLERK_CSV", "/tmp/draft.csv")
	t.Setenv("AUCTIONCLERK_BUDGET", "300")
	t.Setenv("AUCTIONCLERK_MY_TEAM", "Sharks")

	cfg := DefaultConfig()

	assert.Equal(t, "/tmp/draft.csv", cfg.CSVPath)
	assert.Equal(t, 300, cfg.Budget)
	assert.Equal(t, "Sharks", cfg.MyTeam)
}

func TestDefaultConfigIgnoresBadBudget(t *testing.T) {
	t.Setenv("AUCTIONCLERK_BUDGET", "plenty")

	cfg := DefaultConfig()

	assert.Equal(t, model.DefaultBudget, cfg.Budget)
}
