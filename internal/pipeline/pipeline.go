package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoslow/prevgen/internal/ports"
	"github.com/dkoslow/prevgen/internal/ports/adapters/ffmpeg"
	"github.com/dkoslow/prevgen/internal/types"
	"github.com/dkoslow/prevgen/internal/usecase"
)

// Config is built once per invocation and never mutated.
type Config struct {
	Input  string
	Output string // optional; derived from the input name when empty

	Samples        int
	SampleDuration float64 // seconds
	Scale          string  // e.g. "320:-1", "320:auto"; empty = keep resolution
	Format         string  // output container, e.g. "mp4"
	Quiet          bool    // drop engine log forwarding

	FFmpegPath  string
	FFprobePath string

	// Engine overrides the default ffmpeg adapter; tests use this seam.
	Engine ports.MediaEngine

	Logger zerolog.Logger
}

func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is empty: %w", types.ErrInvalidInput)
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	return validateParams(c.Samples, c.SampleDuration, c.Scale, c.Format)
}

func validateParams(samples int, sampleDuration float64, scale, format string) error {
	if samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d: %w", samples, types.ErrInvalidInput)
	}
	if sampleDuration <= 0 {
		return fmt.Errorf("sample duration must be > 0, got %g: %w", sampleDuration, types.ErrInvalidInput)
	}
	if format == "" {
		return fmt.Errorf("format is empty: %w", types.ErrInvalidInput)
	}
	if scale != "" {
		if err := validateScale(scale); err != nil {
			return err
		}
	}
	return nil
}

func validateScale(scale string) error {
	parts := strings.Split(scale, ":")
	if len(parts) != 2 {
		return fmt.Errorf("scale %q must be <width>:<height>: %w", scale, types.ErrInvalidInput)
	}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "auto") {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || (n <= 0 && n != -1 && n != -2) {
			return fmt.Errorf("scale dimension %q: %w", p, types.ErrInvalidInput)
		}
	}
	return nil
}

func (c Config) engine() ports.MediaEngine {
	if c.Engine != nil {
		return c.Engine
	}
	return ffmpeg.New(c.Logger, c.FFmpegPath, c.FFprobePath)
}

// Run generates a preview for a local file and returns the artifact.
func Run(ctx context.Context, cfg Config) (types.Preview, error) {
	if err := cfg.Validate(); err != nil {
		return types.Preview{}, err
	}

	out := cfg.Output
	if out == "" {
		out = filepath.Join(filepath.Dir(cfg.Input), previewName(filepath.Base(cfg.Input), cfg.Format))
	}

	cfg.Logger.Info().
		Str("input", cfg.Input).
		Str("output", out).
		Int("samples", cfg.Samples).
		Float64("sample_duration", cfg.SampleDuration).
		Msg("generating preview")

	uc := usecase.New(usecase.Deps{Engine: cfg.engine()})
	res, err := uc.Run(ctx, usecase.Input{
		Source:         cfg.Input,
		Output:         out,
		Samples:        cfg.Samples,
		SampleDuration: cfg.SampleDuration,
		Scale:          cfg.Scale,
		Format:         cfg.Format,
		Quiet:          cfg.Quiet,
	})
	if err != nil {
		return types.Preview{}, err
	}

	cfg.Logger.Info().
		Float64("source_duration", res.SourceDuration).
		Int("segments", len(res.Starts)).
		Str("output", res.Output).
		Msg("preview ready")
	return res, nil
}

// previewName derives "<name>_prev.<format>", matching how uploaded artifacts
// have always been keyed.
func previewName(base, format string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		name = "preview"
	}
	return name + "_prev." + format
}

// ensure the adapter satisfies the port
var _ ports.MediaEngine = (*ffmpeg.Adapter)(nil)
