package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoslow/prevgen/internal/logging"
	"github.com/dkoslow/prevgen/internal/pipeline"
)

func runLocal(cmd *cobra.Command, input string) error {
	cfg := previewConfig(cmd)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	cfg.Input = absIn
	cfg.Output, _ = cmd.Flags().GetString("out")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

// previewConfig builds the shared part of the pipeline config from flags.
func previewConfig(cmd *cobra.Command) pipeline.Config {
	samples, _ := cmd.Flags().GetInt("samples")
	sampleDuration, _ := cmd.Flags().GetFloat64("sample-duration")
	scale, _ := cmd.Flags().GetString("scale")
	format, _ := cmd.Flags().GetString("format")
	debug, _ := cmd.Flags().GetBool("debug")
	ffmpegPath, _ := cmd.Flags().GetString("ffmpeg")
	ffprobePath, _ := cmd.Flags().GetString("ffprobe")

	return pipeline.Config{
		Samples:        samples,
		SampleDuration: sampleDuration,
		Scale:          scale,
		Format:         format,
		Quiet:          !debug,
		FFmpegPath:     ffmpegPath,
		FFprobePath:    ffprobePath,
		Logger:         logging.New(debug),
	}
}
