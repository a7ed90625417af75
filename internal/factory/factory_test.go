package factory

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salaries.csv")
	csv := "name,position,salary\nAlpha Back,RB,50\nBravo Wide,WR,40\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))
	return path
}

func TestNewWiresApp(t *testing.T) {
	app, err := New(Config{CSVPath: writeCSV(t)})

	require.NoError(t, err)
	assert.Equal(t, 2, app.Catalog.Size())
	assert.NotNil(t, app.Matcher)
	assert.NotNil(t, app.Pricing)
	assert.NotNil(t, app.Registry)
	assert.NotNil(t, app.Session)
	assert.NotNil(t, app.Controller)
	assert.NotNil(t, app.Clock)
}

func TestNewMissingCSV(t *testing.T) {
	_, err := New(Config{CSVPath: filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}

func TestWiredControllerRunsDraft(t *testing.T) {
	out := &bytes.Buffer{}
	app, err := New(Config{
		CSVPath: writeCSV(t),
		Input:   strings.NewReader("alpha\n10\nSharks\nq\n"),
		Output:  out,
	})
	require.NoError(t, err)

	require.NoError(t, app.Controller.Run())

	assert.Contains(t, out.String(), "Assigned Alpha Back to Sharks for $10.")
	assert.Len(t, app.Session.History, 1)
	team, ok := app.Registry.Get("Sharks")
	require.True(t, ok)
	assert.Equal(t, 10, team.Spent)
}
