package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoslow/prevgen/internal/types"
)

// Adapter drives ffmpeg/ffprobe through os/exec. It is the only place that
// knows the engine's CLI surface.
type Adapter struct {
	log     zerolog.Logger
	ffmpeg  string
	ffprobe string
}

func New(log zerolog.Logger, ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{
		log:     log.With().Str("component", "ffmpeg").Logger(),
		ffmpeg:  ffmpegPath,
		ffprobe: ffprobePath,
	}
}

// probeResult matches the slice of ffprobe's JSON output we rely on.
type probeResult struct {
	Format struct {
		Duration   string `json:"duration"`
		FormatName string `json:"format_name"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func (a *Adapter) Probe(ctx context.Context, path string) (types.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return types.MediaInfo{}, &types.ProbeError{Path: path, Diagnostic: stderr.String(), Err: err}
	}
	info, err := parseProbe(path, stdout.Bytes())
	if err != nil {
		return types.MediaInfo{}, &types.ProbeError{Path: path, Diagnostic: stdout.String(), Err: err}
	}
	a.log.Debug().Str("input", path).Float64("duration", info.Duration).Msg("probed source")
	return info, nil
}

func parseProbe(path string, raw []byte) (types.MediaInfo, error) {
	var pr probeResult
	if err := json.Unmarshal(raw, &pr); err != nil {
		return types.MediaInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if pr.Format.Duration == "" {
		return types.MediaInfo{}, fmt.Errorf("no duration in format metadata")
	}
	dur, err := strconv.ParseFloat(pr.Format.Duration, 64)
	if err != nil {
		return types.MediaInfo{}, fmt.Errorf("parse duration %q: %w", pr.Format.Duration, err)
	}

	info := types.MediaInfo{Path: path, Duration: dur, FormatName: pr.Format.FormatName}
	for _, s := range pr.Streams {
		switch s.CodecType {
		case "video":
			if info.VideoCodec == "" {
				info.VideoCodec = s.CodecName
				info.Width = s.Width
				info.Height = s.Height
			}
		case "audio":
			info.HasAudio = true
		}
	}
	return info, nil
}

// RenderPreview runs the engine once: trim each planned segment, concatenate
// in order, optionally scale, and write the output in the requested format.
func (a *Adapter) RenderPreview(ctx context.Context, spec types.RenderSpec) error {
	if len(spec.Starts) == 0 {
		return fmt.Errorf("render spec has no segments: %w", types.ErrInvalidInput)
	}

	args := renderArgs(spec)
	a.log.Debug().Strs("args", args).Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return &types.EncodeError{Output: spec.Output, Diagnostic: string(b), Err: err}
	}
	if !spec.Quiet {
		for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
			if line != "" {
				a.log.Debug().Str("ffmpeg", line).Msg("engine output")
			}
		}
	}
	return nil
}

func renderArgs(spec types.RenderSpec) []string {
	graph, out := buildPreviewGraph(spec)

	args := []string{"-y", "-hide_banner"}
	if spec.Quiet {
		args = append(args, "-loglevel", "error", "-nostats")
	}
	args = append(args,
		"-i", spec.Input,
		"-filter_complex", graph,
		"-map", out,
		"-an",
	)
	if spec.Format != "" {
		args = append(args, "-f", spec.Format)
	}
	return append(args, spec.Output)
}
