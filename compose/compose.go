// Package compose applies an ordered list of stage functions right to
// left: the last stage in the list runs first and receives the full
// argument list, every preceding stage must be unary.
//
// Unlike pipe there is no seeded apply-now form; compose always returns a
// reusable function. Stage normalization matches pipe: erased fn.Func
// values, arbitrary functions, context-leading functions and nil identity
// slots are all accepted.
package compose

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/halfapplied/curried/fn"
	"github.com/halfapplied/curried/future"
	"github.com/halfapplied/curried/internal/reduce"
)

// AsyncFunc is a reusable composition in async mode: every stage result is
// resolved before the preceding stage runs and the overall result is
// pending.
type AsyncFunc func(ctx context.Context, args ...any) *future.Future[any]

// New builds the asynchronous composition of stages. Each call feeds its
// argument list to the last stage first; a failing stage settles the
// returned future as failed with the same cause and no earlier-indexed
// stage runs.
func New(stages ...any) AsyncFunc {
	logger, _ := zap.NewProduction()
	normalized := reduce.NormalizeAll(stages)
	compositionId := uuid.New().String()
	logger.Sugar().Debugf("built async composition: compositionId: %v, stages: %d", compositionId, len(normalized))

	return func(ctx context.Context, args ...any) *future.Future[any] {
		return future.Go(ctx, func(ctx context.Context) (any, error) {
			return reduce.Run(ctx, reduce.Reverse, reduce.Async, normalized, args)
		})
	}
}

// NewSync builds the synchronous composition of stages. A stage returning
// a pending result hands it on as the literal unresolved value. With zero
// stages the returned Func echoes its input.
func NewSync(stages ...any) fn.Func {
	logger, _ := zap.NewProduction()
	normalized := reduce.NormalizeAll(stages)
	compositionId := uuid.New().String()
	logger.Sugar().Debugf("built sync composition: compositionId: %v, stages: %d", compositionId, len(normalized))

	return func(args ...any) any {
		out, err := reduce.Run(context.Background(), reduce.Reverse, reduce.Sync, normalized, args)
		if err != nil {
			panic(err)
		}
		return out
	}
}
