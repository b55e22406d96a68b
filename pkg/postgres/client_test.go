package postgres

import (
	"testing"
	"time"

	"github.com/corpustools/freqpipe/pkg/config"
)

func TestPoolLimits(t *testing.T) {
	cases := []struct {
		name         string
		cfg          config.PostgresConfig
		wantOpen     int
		wantIdle     int
		wantLifetime time.Duration
	}{
		{
			name:         "zero config falls back to pipeline defaults",
			cfg:          config.PostgresConfig{},
			wantOpen:     10,
			wantIdle:     2,
			wantLifetime: 30 * time.Minute,
		},
		{
			name: "explicit settings pass through",
			cfg: config.PostgresConfig{
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 5 * time.Minute,
			},
			wantOpen:     25,
			wantIdle:     5,
			wantLifetime: 5 * time.Minute,
		},
		{
			name: "idle is clamped to the open limit",
			cfg: config.PostgresConfig{
				MaxOpenConns: 3,
				MaxIdleConns: 8,
			},
			wantOpen:     3,
			wantIdle:     3,
			wantLifetime: 30 * time.Minute,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			open, idle, lifetime := poolLimits(tc.cfg)
			if open != tc.wantOpen || idle != tc.wantIdle || lifetime != tc.wantLifetime {
				t.Errorf("poolLimits = (%d, %d, %v), want (%d, %d, %v)",
					open, idle, lifetime, tc.wantOpen, tc.wantIdle, tc.wantLifetime)
			}
		})
	}
}
