package usecase

import (
	"context"

	"github.com/dkoslow/prevgen/internal/domain/sampling"
	"github.com/dkoslow/prevgen/internal/ports"
	"github.com/dkoslow/prevgen/internal/types"
)

type Deps struct {
	Engine ports.MediaEngine
}

// Usecase assembles a preview: probe the source duration, plan sample start
// times, then render one trim+concat pass through the engine.
type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Source         string
	Output         string
	Samples        int
	SampleDuration float64
	Scale          string
	Format         string
	Quiet          bool
}

func (u Usecase) Run(ctx context.Context, in Input) (types.Preview, error) {
	info, err := u.d.Engine.Probe(ctx, in.Source)
	if err != nil {
		return types.Preview{}, err
	}

	starts, err := sampling.Plan(info.Duration, in.Samples, in.SampleDuration)
	if err != nil {
		return types.Preview{}, err
	}

	spec := types.RenderSpec{
		Input:          in.Source,
		Output:         in.Output,
		Starts:         starts,
		SampleDuration: in.SampleDuration,
		Scale:          in.Scale,
		Format:         in.Format,
		Quiet:          in.Quiet,
	}
	if err := u.d.Engine.RenderPreview(ctx, spec); err != nil {
		return types.Preview{}, err
	}

	return types.Preview{
		Output:         in.Output,
		SourceDuration: info.Duration,
		Starts:         starts,
	}, nil
}
