package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoslow/prevgen/internal/pipeline"
	s3adapter "github.com/dkoslow/prevgen/internal/ports/adapters/s3"
)

func runRemote(cmd *cobra.Command, uri string) error {
	bucket, key, err := pipeline.ParseObjectURI(uri)
	if err != nil {
		return err
	}

	outputBucket, _ := cmd.Flags().GetString("output-bucket")
	outputPrefix, _ := cmd.Flags().GetString("output-prefix")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	store, err := s3adapter.New(ctx)
	if err != nil {
		return err
	}

	cfg := pipeline.RemoteConfig{
		Config:       previewConfig(cmd),
		Bucket:       bucket,
		Key:          key,
		OutputBucket: outputBucket,
		OutputPrefix: outputPrefix,
		Store:        store,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	outKey, err := pipeline.RunRemote(ctx, cfg)
	if err != nil {
		return err
	}

	outBucket := outputBucket
	if outBucket == "" {
		outBucket = bucket
	}
	fmt.Fprintf(cmd.OutOrStdout(), "s3://%s/%s\n", outBucket, outKey)
	return nil
}
