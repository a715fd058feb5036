package internal

import (
	"context"

	"tempmode/pkg/mode"
)

type Sweeper interface {
	Sweep(ctx context.Context, s *mode.Series, k int) ([]mode.Result, error)
	SweepTimed(ctx context.Context, s *mode.Series, k int) ([]mode.Result, []int, error)
}
