package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "prevgen <input>",
		Short:        "Generate a short preview by sampling evenly across a video",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	addPreviewFlags(root)
	root.Flags().String("out", "", "Output file (default: <input>_prev.<format>)")

	s3Cmd := &cobra.Command{
		Use:          "s3 s3://bucket/key",
		Short:        "Generate a preview for an S3 object and upload it back",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemote(cmd, args[0])
		},
	}
	addPreviewFlags(s3Cmd)
	s3Cmd.Flags().String("output-bucket", os.Getenv("output_bucket"), "Bucket for the preview (default: source bucket)")
	s3Cmd.Flags().String("output-prefix", getenvDefault("s3_output_prefix", "output"), "Key prefix for the preview")
	root.AddCommand(s3Cmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addPreviewFlags registers the sampling flags shared by both commands.
// Defaults come from the environment, keeping the historical variable names.
func addPreviewFlags(cmd *cobra.Command) {
	cmd.Flags().Int("samples", getenvInt("samples", 4), "Number of segments to extract")
	cmd.Flags().Float64("sample-duration", getenvFloat("sample_duration", 2), "Seconds per segment")
	cmd.Flags().String("scale", os.Getenv("scale"), "Target resolution, e.g. 320:-1 or 320:auto")
	cmd.Flags().String("format", getenvDefault("format", "mp4"), "Output container format")
	cmd.Flags().Bool("debug", getenvBool("debug"), "Verbose logging, forward engine output")

	// Hidden engine path overrides (internal)
	cmd.Flags().String("ffmpeg", "ffmpeg", "ffmpeg binary path")
	cmd.Flags().String("ffprobe", "ffprobe", "ffprobe binary path")
	_ = cmd.Flags().MarkHidden("ffmpeg")
	_ = cmd.Flags().MarkHidden("ffprobe")
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBool(k string) bool {
	return strings.EqualFold(os.Getenv(k), "true")
}
