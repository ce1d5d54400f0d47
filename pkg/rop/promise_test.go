package rop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPromise(t *testing.T) {
	t.Parallel()

	v, err := Success(4).ToPromise().Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	boom := errors.New("boom")
	_, err = Fail[int](boom).ToPromise().Await(context.Background())
	assert.Same(t, boom, err)
}

func TestPromise_SettlesOnce(t *testing.T) {
	t.Parallel()

	p, settle := NewPromise[int]()
	settle(1, nil)
	settle(2, errors.New("late"))

	r := p.Wait()
	require.True(t, r.IsSuccess())
	assert.Equal(t, 1, r.Value())
}

func TestGo_RecoversPanic(t *testing.T) {
	t.Parallel()

	r := Go(func() (int, error) { panic("kaboom") }).Wait()
	require.True(t, r.IsFailure())
	assert.EqualError(t, r.Err(), "kaboom")
}

func TestPromise_AwaitAbandonsOnCancel(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	p := Go(func() (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-p.Done():
		t.Fatal("promise must still be pending")
	default:
	}
}
