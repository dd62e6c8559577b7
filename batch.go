//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/biso/env"
)

// DigestAll computes the base64 digests of independent messages
// concurrently. The result slice is in the message order.
func DigestAll(ctx context.Context, config *env.Config,
	messages [][]byte) ([]string, error) {

	sums, err := SumAll(ctx, config, messages)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(sums))
	for idx, sum := range sums {
		result[idx] = Encode(sum)
	}
	return result, nil
}

// SumAll computes the digests of independent messages concurrently,
// using at most config.GetWorkers goroutines. The result slice is in
// the message order. The function returns the context error if ctx is
// cancelled before all messages are hashed.
func SumAll(ctx context.Context, config *env.Config,
	messages [][]byte) ([][Size]byte, error) {

	result := make([][Size]byte, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.GetWorkers())

	for idx, message := range messages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result[idx] = Sum(message)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
