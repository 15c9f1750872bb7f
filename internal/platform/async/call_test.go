package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PedroCamargo-dev/transfers-client/internal/platform/async"
)

func TestGo_SettlesWithValue(t *testing.T) {
	call := async.Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	got, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestGo_SettlesWithSameError(t *testing.T) {
	boom := errors.New("boom")

	call := async.Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := call.Result()
	if err != boom {
		t.Fatalf("expected the exact error %v, got %v", boom, err)
	}
}

func TestGo_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})

	call := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	select {
	case <-call.Done():
		t.Fatal("expected call to be pending")
	default:
	}

	close(release)
	<-call.Done()

	if got, _ := call.Result(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestWait_ContextBoundsOnlyTheWait(t *testing.T) {
	release := make(chan struct{})
	call := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := call.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	close(release)

	got, err := call.Wait(context.Background())
	if err != nil || got != 7 {
		t.Errorf("expected 7 after release, got %d, %v", got, err)
	}
}
