package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irtx"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.True(t, p.Infrared)
	assert.Equal(t, 3, p.Pin)
	assert.Equal(t, irtx.DefaultGuard, p.Guard())
	assert.Equal(t, irtx.CompensationFor(irtx.Clock16MHz), p.Compensation())
	assert.NoError(t, p.Validate())
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, p Profile)
		wantErr string
	}{
		{
			name: "empty falls back to default",
			yaml: "",
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, Default(), p)
			},
		},
		{
			name: "board preset",
			yaml: "board: two_channel\n",
			check: func(t *testing.T, p Profile) {
				assert.False(t, p.Infrared)
			},
		},
		{
			name: "fields override preset",
			yaml: "board: micro_rc\npin: 17\nclock_hz: 8000000\nguard_ms: 45\n",
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, 17, p.Pin)
				assert.Equal(t, 45*time.Millisecond, p.Guard())
				assert.Equal(t, irtx.Compensation{}, p.Compensation())
			},
		},
		{
			name: "explicit edge delay",
			yaml: "edge_delay_us: 13\n",
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, 13*time.Microsecond, p.Compensation().EdgeDelay)
				assert.Zero(t, p.Compensation().EdgeCost())
			},
		},
		{
			name:    "unknown board",
			yaml:    "board: nope\n",
			wantErr: "unknown board",
		},
		{
			name:    "carrier is not a host setting",
			yaml:    "carrier: pwm\n",
			wantErr: "field carrier not found",
		},
		{
			name:    "misspelled key",
			yaml:    "guard: 45\n",
			wantErr: "field guard not found",
		},
		{
			name:    "negative edge delay",
			yaml:    "edge_delay_us: -1\n",
			wantErr: "edge_delay_us",
		},
		{
			name:    "zero guard",
			yaml:    "guard_ms: 0\n",
			wantErr: "guard_ms",
		},
		{
			name:    "malformed",
			yaml:    "pin: [\n",
			wantErr: "failed to parse profile",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProfile([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestUnknownBoardIsSentinel(t *testing.T) {
	_, err := Board("nope")
	assert.Equal(t, ErrUnknownBoard, errors.Cause(err))
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pin: 21\n"), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 21, p.Pin)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read profile")
}
