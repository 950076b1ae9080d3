package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/synbuild/profile"
)

// TestStart_NoMode verifies an empty or unknown mode starts nothing.
func TestStart_NoMode(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", "no-such-mode"} {
		p := profile.Start(mode, t.TempDir(), true)
		assert.NotNil(t, p)
		assert.NotPanics(t, p.Stop)
	}
}

// TestModes verifies the mode list is sorted.
func TestModes(t *testing.T) {
	t.Parallel()

	assert.IsNonDecreasing(t, profile.Modes())
}
