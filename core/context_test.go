package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuppressHeader(t *testing.T) {
	assert.False(t, shouldSuppressHeader(context.Background()))
	assert.True(t, shouldSuppressHeader(WithSuppressHeader(context.Background())))

	// A foreign value under a different key type must not be picked up
	ctx := context.WithValue(context.Background(), "suppressHeader", true) //nolint:staticcheck
	assert.False(t, shouldSuppressHeader(ctx))
}

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(ctx))
		}()
	}
	wg.Wait()
}
