package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dkoslow/prevgen/internal/ports"
	"github.com/dkoslow/prevgen/internal/types"
	"github.com/dkoslow/prevgen/internal/usecase"
)

// RemoteConfig drives the bucket-to-bucket flow: download the source object,
// assemble the preview in an isolated workspace, upload the artifact.
type RemoteConfig struct {
	Config

	Bucket       string
	Key          string
	OutputBucket string // defaults to Bucket
	OutputPrefix string // defaults to "output"

	Store ports.ObjectStore
}

func (c RemoteConfig) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is empty: %w", types.ErrInvalidInput)
	}
	if c.Key == "" {
		return fmt.Errorf("object key is empty: %w", types.ErrInvalidInput)
	}
	if c.Store == nil {
		return fmt.Errorf("object store is not configured: %w", types.ErrInvalidInput)
	}
	return validateParams(c.Samples, c.SampleDuration, c.Scale, c.Format)
}

// RunRemote processes one object and returns the uploaded preview's key.
// The temporary workspace is private to this invocation and removed on every
// exit path, so concurrent invocations on one host cannot collide.
func RunRemote(ctx context.Context, cfg RemoteConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	outBucket := cfg.OutputBucket
	if outBucket == "" {
		outBucket = cfg.Bucket
	}
	prefix := cfg.OutputPrefix
	if prefix == "" {
		prefix = "output"
	}

	jobID := uuid.NewString()
	log := cfg.Logger.With().Str("job", jobID).Logger()

	ws, err := os.MkdirTemp("", "prevgen-"+jobID[:8]+"-")
	if err != nil {
		return "", fmt.Errorf("create workspace: %w", err)
	}
	defer os.RemoveAll(ws)

	in := filepath.Join(ws, path.Base(cfg.Key))
	log.Info().Str("bucket", cfg.Bucket).Str("key", cfg.Key).Msg("downloading source")
	if err := cfg.Store.Download(ctx, cfg.Bucket, cfg.Key, in); err != nil {
		return "", err
	}

	out := filepath.Join(ws, previewName(path.Base(cfg.Key), cfg.Format))
	uc := usecase.New(usecase.Deps{Engine: cfg.engine()})
	res, err := uc.Run(ctx, usecase.Input{
		Source:         in,
		Output:         out,
		Samples:        cfg.Samples,
		SampleDuration: cfg.SampleDuration,
		Scale:          cfg.Scale,
		Format:         cfg.Format,
		Quiet:          cfg.Quiet,
	})
	if err != nil {
		return "", err
	}

	outKey := outputKey(prefix, cfg.Key, cfg.Format)
	log.Info().
		Str("bucket", outBucket).
		Str("key", outKey).
		Float64("source_duration", res.SourceDuration).
		Int("segments", len(res.Starts)).
		Msg("uploading preview")
	if err := cfg.Store.Upload(ctx, res.Output, outBucket, outKey); err != nil {
		return "", err
	}
	return outKey, nil
}

// outputKey mirrors the historical naming: <prefix>/<basename>_prev.<format>.
func outputKey(prefix, key, format string) string {
	return path.Join(prefix, previewName(path.Base(key), format))
}

// ParseObjectURI splits "s3://bucket/path/to/key" into bucket and key.
func ParseObjectURI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("object URI %q: %w", uri, types.ErrInvalidInput)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("object URI %q must look like s3://bucket/key: %w", uri, types.ErrInvalidInput)
	}
	return u.Host, key, nil
}
