//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package biso

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/markkurossi/biso/env"
)

func TestDigestAll(t *testing.T) {
	var messages [][]byte
	for i := 0; i < 100; i++ {
		messages = append(messages, []byte(fmt.Sprintf("message %d", i)))
	}

	for _, workers := range []int{0, 1, 3, 16} {
		config := &env.Config{
			Workers: workers,
		}
		result, err := DigestAll(context.Background(), config, messages)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(result) != len(messages) {
			t.Fatalf("workers=%d: %d results", workers, len(result))
		}
		for idx, msg := range messages {
			if result[idx] != DigestBytes(msg) {
				t.Fatalf("workers=%d: result %d out of order", workers, idx)
			}
		}
	}
}

func TestDigestAllEmpty(t *testing.T) {
	result, err := DigestAll(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 0 {
		t.Fatalf("got %d results", len(result))
	}
}

func TestDigestAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DigestAll(ctx, &env.Config{Workers: 2},
		[][]byte{[]byte("a"), []byte("b")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
