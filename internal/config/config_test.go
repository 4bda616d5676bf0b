package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi-solver/internal/playout"
)

func TestLoadSolverConfig_Defaults(t *testing.T) {
	t.Setenv("REVERSI_SOLVER_WORKERS", "")
	t.Setenv("REVERSI_SOLVER_ALPHA_BETA", "")
	t.Setenv("REVERSI_SOLVER_CACHE", "")
	t.Setenv("REVERSI_SOLVER_EMPTIES", "")

	cfg, err := LoadSolverConfig()
	require.NoError(t, err)
	require.Equal(t, &SolverConfig{
		Workers:             1,
		AlphaBeta:           true,
		Cache:               false,
		PlayoutSolveEmpties: 10,
	}, cfg)
	require.Len(t, cfg.Options(), 2)
}

func TestLoadSolverConfig_Env(t *testing.T) {
	t.Setenv("REVERSI_SOLVER_WORKERS", "4")
	t.Setenv("REVERSI_SOLVER_ALPHA_BETA", "false")
	t.Setenv("REVERSI_SOLVER_CACHE", "true")
	t.Setenv("REVERSI_SOLVER_EMPTIES", "12")

	cfg, err := LoadSolverConfig()
	require.NoError(t, err)
	require.Equal(t, &SolverConfig{
		Workers:             4,
		AlphaBeta:           false,
		Cache:               true,
		PlayoutSolveEmpties: 12,
	}, cfg)
	require.Len(t, cfg.Options(), 2)
}

func TestLoadSolverConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"REVERSI_SOLVER_WORKERS", "many"},
		{"REVERSI_SOLVER_ALPHA_BETA", "yes"},
		{"REVERSI_SOLVER_CACHE", "1"},
		{"REVERSI_SOLVER_EMPTIES", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadSolverConfig()
			require.ErrorIs(t, err, ErrInvalidEnv)
			require.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoadPlayoutConfig(t *testing.T) {
	t.Setenv("REVERSI_PLAYOUT_DIFFICULTY", "")
	t.Setenv("REVERSI_PLAYOUT_PLAYOUTS", "")
	t.Setenv("REVERSI_PLAYOUT_SEED", "")

	cfg, err := LoadPlayoutConfig()
	require.NoError(t, err)
	require.Equal(t, &PlayoutConfig{Difficulty: playout.DefaultDifficulty}, cfg)
	require.Len(t, cfg.Options(), 1)

	t.Setenv("REVERSI_PLAYOUT_DIFFICULTY", "8")
	t.Setenv("REVERSI_PLAYOUT_PLAYOUTS", "300")
	t.Setenv("REVERSI_PLAYOUT_SEED", "12345")

	cfg, err = LoadPlayoutConfig()
	require.NoError(t, err)
	require.Equal(t, &PlayoutConfig{Difficulty: 8, Playouts: 300, Seed: 12345}, cfg)

	bot := playout.NewBot(cfg.Options()...)
	require.Equal(t, 8, bot.Difficulty())
	require.Equal(t, 300, bot.Playouts())

	t.Setenv("REVERSI_PLAYOUT_SEED", "-1")
	_, err = LoadPlayoutConfig()
	require.ErrorIs(t, err, ErrInvalidEnv)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"Warn", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEnv)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}
