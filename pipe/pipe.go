// Package pipe threads a value left to right through an ordered list of
// stage functions.
//
// Two calling forms exist. The apply-now forms (Do, DoSync) consume a seed
// value immediately. The build forms (New, NewAsync) return a reusable
// pipeline whose first stage receives the full argument list of each call
// and whose remaining stages must be unary.
//
// Stages may be erased fn.Func values, arbitrary functions (lifted through
// fn.Lift), functions with a leading context.Context parameter (the engine
// context is injected), or nil (identity).
package pipe

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/halfapplied/curried/fn"
	"github.com/halfapplied/curried/future"
	"github.com/halfapplied/curried/internal/reduce"
)

// AsyncFunc is a reusable pipeline in async mode: every stage result is
// resolved before the next stage runs and the overall result is pending.
type AsyncFunc func(ctx context.Context, args ...any) *future.Future[any]

// Do threads seed through the stages left to right, resolving every
// intermediate pending result before the next stage, and returns the
// overall result as a pending computation. A seed that is itself pending
// is resolved before the first stage runs. A failing stage settles the
// returned future as failed with the same cause and no later stage runs.
func Do(ctx context.Context, seed any, stages ...any) *future.Future[any] {
	normalized := reduce.NormalizeAll(stages)
	return future.Go(ctx, func(ctx context.Context) (any, error) {
		return reduce.Run(ctx, reduce.Forward, reduce.Async, normalized, []any{seed})
	})
}

// DoSync threads seed through the stages left to right without suspension
// and returns the result immediately. A stage returning a pending result
// hands it to the next stage as the literal unresolved value. With no
// stages the seed is returned unchanged.
func DoSync(seed any, stages ...any) any {
	out, err := reduce.Run(context.Background(), reduce.Forward, reduce.Sync, reduce.NormalizeAll(stages), []any{seed})
	if err != nil {
		panic(err)
	}
	return out
}

// New builds a reusable synchronous pipeline. The returned Func feeds its
// whole argument list to the first stage and threads the single result
// through the remaining unary stages. With zero stages the returned Func
// echoes its input.
func New(stages ...any) fn.Func {
	logger, _ := zap.NewProduction()
	normalized := reduce.NormalizeAll(stages)
	pipelineId := uuid.New().String()
	logger.Sugar().Debugf("built sync pipeline: pipelineId: %v, stages: %d", pipelineId, len(normalized))

	return func(args ...any) any {
		out, err := reduce.Run(context.Background(), reduce.Forward, reduce.Sync, normalized, args)
		if err != nil {
			panic(err)
		}
		return out
	}
}

// NewAsync builds a reusable asynchronous pipeline: New with every stage
// boundary a suspension point and a pending overall result.
func NewAsync(stages ...any) AsyncFunc {
	logger, _ := zap.NewProduction()
	normalized := reduce.NormalizeAll(stages)
	pipelineId := uuid.New().String()
	logger.Sugar().Debugf("built async pipeline: pipelineId: %v, stages: %d", pipelineId, len(normalized))

	return func(ctx context.Context, args ...any) *future.Future[any] {
		return future.Go(ctx, func(ctx context.Context) (any, error) {
			return reduce.Run(ctx, reduce.Forward, reduce.Async, normalized, args)
		})
	}
}
