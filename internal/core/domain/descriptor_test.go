package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		wantModule string
		wantClass  string
		wantErr    bool
	}{
		{
			name:       "simple",
			descriptor: "timing.Profile",
			wantModule: "timing",
			wantClass:  "Profile",
		},
		{
			name:       "nested module split on last dot",
			descriptor: "reports.junit.Writer",
			wantModule: "reports.junit",
			wantClass:  "Writer",
		},
		{
			name:       "no separator",
			descriptor: "timing",
			wantErr:    true,
		},
		{
			name:       "empty class",
			descriptor: "timing.",
			wantErr:    true,
		},
		{
			name:       "empty module",
			descriptor: ".Profile",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := domain.ParseDescriptor(tt.descriptor)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrNotATaskModule))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModule, d.Module)
			assert.Equal(t, tt.wantClass, d.Class)
			assert.Equal(t, tt.descriptor, d.String())
		})
	}
}
