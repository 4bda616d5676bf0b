package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/lk16/reversi-solver/internal/playout"
	"github.com/lk16/reversi-solver/internal/solver"
)

var ErrInvalidEnv = errors.New("invalid environment variable")

// SolverConfig holds solver defaults loaded from environment variables.
// Command line flags override them.
type SolverConfig struct {
	Workers   int
	AlphaBeta bool
	Cache     bool

	// PlayoutSolveEmpties is the number of empty squares at which self-play
	// switches from the playout bot to the exact solver.
	PlayoutSolveEmpties int
}

// LoadSolverConfig loads solver configuration from environment variables.
func LoadSolverConfig() (*SolverConfig, error) {
	workers, err := getEnvInt("REVERSI_SOLVER_WORKERS", 1)
	if err != nil {
		return nil, err
	}

	alphaBeta, err := getEnvBool("REVERSI_SOLVER_ALPHA_BETA", true)
	if err != nil {
		return nil, err
	}

	cache, err := getEnvBool("REVERSI_SOLVER_CACHE", false)
	if err != nil {
		return nil, err
	}

	solveEmpties, err := getEnvInt("REVERSI_SOLVER_EMPTIES", 10)
	if err != nil {
		return nil, err
	}

	return &SolverConfig{
		Workers:             workers,
		AlphaBeta:           alphaBeta,
		Cache:               cache,
		PlayoutSolveEmpties: solveEmpties,
	}, nil
}

// Options converts the configuration to solver options.
func (c *SolverConfig) Options() []solver.Option {
	options := []solver.Option{solver.WithWorkers(c.Workers)}
	if c.AlphaBeta {
		options = append(options, solver.WithAlphaBeta())
	}
	if c.Cache {
		options = append(options, solver.WithCache())
	}
	return options
}

type PlayoutConfig struct {
	Difficulty int
	Playouts   int
	Seed       uint64
}

// LoadPlayoutConfig loads playout bot configuration from environment variables.
// A zero Playouts or Seed means the bot picks its own.
func LoadPlayoutConfig() (*PlayoutConfig, error) {
	difficulty, err := getEnvInt("REVERSI_PLAYOUT_DIFFICULTY", playout.DefaultDifficulty)
	if err != nil {
		return nil, err
	}

	playouts, err := getEnvInt("REVERSI_PLAYOUT_PLAYOUTS", 0)
	if err != nil {
		return nil, err
	}

	seed, err := getEnvUint64("REVERSI_PLAYOUT_SEED", 0)
	if err != nil {
		return nil, err
	}

	return &PlayoutConfig{
		Difficulty: difficulty,
		Playouts:   playouts,
		Seed:       seed,
	}, nil
}

// Options converts the configuration to playout bot options.
func (c *PlayoutConfig) Options() []playout.Option {
	options := []playout.Option{playout.WithDifficulty(c.Difficulty)}
	if c.Playouts > 0 {
		options = append(options, playout.WithPlayouts(c.Playouts))
	}
	if c.Seed != 0 {
		options = append(options, playout.WithSeed(c.Seed))
	}
	return options
}

// MustLoad exits the program when loading configuration failed.
func MustLoad[T any](cfg T, err error) T {
	if err != nil {
		slog.Error("Cannot load configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidEnv, key, value)
	}
	return parsed, nil
}

func getEnvUint64(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidEnv, key, value)
	}
	return parsed, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	if value != "true" && value != "false" {
		return false, fmt.Errorf("%w: %s=%q must be \"true\" or \"false\"", ErrInvalidEnv, key, value)
	}
	return value == "true", nil
}
