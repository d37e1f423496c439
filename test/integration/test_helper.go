package integration

import (
	"os"
	"testing"
)

// BaseURL points the suite at a running API instance.
var BaseURL = "http://localhost:8080"

func TestMain(m *testing.M) {
	if url := os.Getenv("LAUNCHPAD_API_URL"); url != "" {
		BaseURL = url
	}
	os.Exit(m.Run())
}

// requireAPI skips the test unless an API instance is configured. The suite
// needs a live server and database, so it only runs when asked for.
func requireAPI(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Set INTEGRATION_TEST=1 and LAUNCHPAD_API_URL to run integration tests")
	}
}
