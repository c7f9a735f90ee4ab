package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = oldVersion, oldCommit, oldDate
	})

	Version, GitCommit, BuildDate = "dev", "unknown", "unknown"
	assert.Equal(t, "dev", GetFullVersion())

	Version, GitCommit, BuildDate = "1.2.0", "abc1234", "2026-10-19"
	assert.Equal(t, "1.2.0", GetVersion())
	assert.Equal(t, "1.2.0 (commit abc1234, built 2026-10-19)", GetFullVersion())
}
