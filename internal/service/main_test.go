package service

import (
	"testing"

	"go.uber.org/goleak"
)

// Test databases are closed in t.Cleanup, so nothing may outlive the run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
