// Package fanout runs enrichment fetches concurrently with a settle-all policy:
// every fetch runs to completion and a failed fetch is replaced by its fallback,
// so one failing lookup never fails the whole result.
package fanout

import (
	"context"

	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit bounds the number of in-flight fetches of a single Map call.
const DefaultLimit = 8

// Settle runs fetch and returns its value, or fallback when it fails.
func Settle[V any](ctx context.Context, name string, fetch func(context.Context) (V, error), fallback V) V {
	v, err := fetch(ctx)
	if err != nil {
		logger.Warn("[fanout.Settle] fetch failed, using fallback", zap.String("fetch", name), zap.String("error", err.Error()))
		return fallback
	}
	return v
}

// Map applies fn to every item concurrently and returns the results in input order.
// It returns only after every fn call has returned. fn must settle its own failures.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) R) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range items {
		i := i
		g.Go(func() error {
			out[i] = fn(gctx, items[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Group runs independent fetches concurrently and waits for all of them.
// Each task is expected to write its own settled result.
func Group(ctx context.Context, tasks ...func(context.Context)) {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			task(gctx)
			return nil
		})
	}
	_ = g.Wait()
}
