package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoslow/prevgen/internal/types"
)

func TestRun_ProbePlanRender(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{duration: 10}
	uc := New(Deps{Engine: engine})

	res, err := uc.Run(context.Background(), Input{
		Source:         "/tmp/in.mp4",
		Output:         "/tmp/out.mp4",
		Samples:        4,
		SampleDuration: 2,
		Scale:          "320:-1",
		Format:         "mp4",
		Quiet:          true,
	})
	require.NoError(t, err)

	require.Len(t, engine.renders, 1)
	spec := engine.renders[0]
	assert.Equal(t, "/tmp/in.mp4", spec.Input)
	assert.Equal(t, "/tmp/out.mp4", spec.Output)
	assert.Equal(t, "320:-1", spec.Scale)
	assert.Equal(t, "mp4", spec.Format)
	assert.True(t, spec.Quiet)

	require.Len(t, spec.Starts, 4)
	assert.Equal(t, 0.0, spec.Starts[0])
	assert.InDelta(t, 8.0, spec.Starts[3], 1e-9)

	assert.Equal(t, 10.0, res.SourceDuration)
	assert.Equal(t, spec.Starts, res.Starts)
	assert.Equal(t, "/tmp/out.mp4", res.Output)
}

func TestRun_ShortSourceStillRenders(t *testing.T) {
	t.Parallel()

	// 1.5s source with 2s samples: plan degenerates to one segment at 0 and
	// the assembler must still produce a playable single-segment preview.
	engine := &fakeEngine{duration: 1.5}
	uc := New(Deps{Engine: engine})

	res, err := uc.Run(context.Background(), Input{
		Source:         "short.mp4",
		Output:         "short_prev.mp4",
		Samples:        4,
		SampleDuration: 2,
		Format:         "mp4",
	})
	require.NoError(t, err)
	require.Len(t, engine.renders, 1)
	assert.Equal(t, []float64{0}, engine.renders[0].Starts)
	assert.Equal(t, []float64{0}, res.Starts)
}

func TestRun_ProbeFailureStopsBeforeRender(t *testing.T) {
	t.Parallel()

	probeErr := &types.ProbeError{
		Path:       "broken.bin",
		Diagnostic: "moov atom not found",
		Err:        errors.New("exit status 1"),
	}
	engine := &fakeEngine{probeErr: probeErr}
	uc := New(Deps{Engine: engine})

	_, err := uc.Run(context.Background(), Input{
		Source:         "broken.bin",
		Output:         "out.mp4",
		Samples:        4,
		SampleDuration: 2,
		Format:         "mp4",
	})
	require.Error(t, err)

	var pe *types.ProbeError
	require.ErrorAs(t, err, &pe)
	assert.NotEmpty(t, pe.Diagnostic)
	assert.Empty(t, engine.renders, "render must not run after a failed probe")
}

func TestRun_RenderFailurePreservesDiagnostic(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{
		duration: 10,
		renderErr: &types.EncodeError{
			Output:     "out.mp4",
			Diagnostic: "Unknown encoder 'libx265'",
			Err:        errors.New("exit status 1"),
		},
	}
	uc := New(Deps{Engine: engine})

	_, err := uc.Run(context.Background(), Input{
		Source:         "in.mp4",
		Output:         "out.mp4",
		Samples:        2,
		SampleDuration: 2,
		Format:         "mp4",
	})
	require.Error(t, err)

	var ee *types.EncodeError
	require.ErrorAs(t, err, &ee)
	assert.Contains(t, ee.Diagnostic, "libx265")
}

func TestRun_InvalidPlanInputs(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{duration: 10}
	uc := New(Deps{Engine: engine})

	_, err := uc.Run(context.Background(), Input{
		Source:         "in.mp4",
		Output:         "out.mp4",
		Samples:        0,
		SampleDuration: 2,
		Format:         "mp4",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Empty(t, engine.renders)
}

type fakeEngine struct {
	duration  float64
	probeErr  error
	renderErr error
	renders   []types.RenderSpec
}

func (f *fakeEngine) Probe(_ context.Context, path string) (types.MediaInfo, error) {
	if f.probeErr != nil {
		return types.MediaInfo{}, f.probeErr
	}
	return types.MediaInfo{Path: path, Duration: f.duration, VideoCodec: "h264"}, nil
}

func (f *fakeEngine) RenderPreview(_ context.Context, spec types.RenderSpec) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.renders = append(f.renders, spec)
	return nil
}
