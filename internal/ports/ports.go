package ports

import (
	"context"

	"github.com/dkoslow/prevgen/internal/types"
)

// MediaEngine is the seam around the external media tool. All engine-specific
// argument and filter-graph construction stays behind this interface.
type MediaEngine interface {
	// Probe inspects a source file and returns its metadata. Failures carry
	// the engine's diagnostic output (*types.ProbeError).
	Probe(ctx context.Context, path string) (types.MediaInfo, error)

	// RenderPreview trims one segment per start time, concatenates them in
	// order and writes a single output file. Failures carry the engine's
	// diagnostic output (*types.EncodeError).
	RenderPreview(ctx context.Context, spec types.RenderSpec) error
}

// ObjectStore moves files between local disk and a remote bucket.
type ObjectStore interface {
	Download(ctx context.Context, bucket, key, dst string) error
	Upload(ctx context.Context, src, bucket, key string) error
}
