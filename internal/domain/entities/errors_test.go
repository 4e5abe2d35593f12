//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/vitepatch/internal/domain/entities"
)

func TestVersionMismatchError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		installed string
		contains  string
		excludes  string
	}{
		{name: "newer", installed: "2.2.0", contains: "newer than supported"},
		{name: "older", installed: "2.0.5", contains: "older than supported"},
		{name: "not semver", installed: "latest", contains: "your vite version: latest", excludes: "than supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			err := &entities.VersionMismatchError{
				Dependency: "vite",
				Supported:  "2.1.2",
				Installed:  tt.installed,
			}

			// when
			msg := err.Error()

			// then
			assert.Contains(t, msg, "only the vite version 2.1.2 is supported")
			assert.Contains(t, msg, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, msg, tt.excludes)
			}
		})
	}

	t.Run("should match ErrVersionMismatch when wrapped", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("check failed: %w", &entities.VersionMismatchError{Installed: "3.0.0"})

		// when
		matched := errors.Is(err, entities.ErrVersionMismatch)

		// then
		assert.True(t, matched)
	})
}
