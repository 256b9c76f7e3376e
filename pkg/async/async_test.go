package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/async"
)

// TestAsyncFunctionality tests the basic functionality of the Async helper.
func TestAsyncFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(30 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	futureBool := async.Async(ctx, "test", func(ctx context.Context, s string) (bool, error) {
		time.Sleep(10 * time.Millisecond)
		return len(s) > 0, nil
	})

	resultString, errString := futureString.Await()
	resultBool, errBool := futureBool.Await()

	if errString != nil || resultString != "Number: 42" {
		t.Errorf("Expected 'Number: 42', got '%s', error: %v", resultString, errString)
	}
	if errBool != nil || !resultBool {
		t.Errorf("Expected true, got %v, error: %v", resultBool, errBool)
	}
}

// TestAsyncPreCancelledContext verifies the function is not invoked for a dead context.
func TestAsyncPreCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	future := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	result, err := future.Await()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if result != 0 {
		t.Errorf("Expected zero result, got: %d", result)
	}
	if calls.Load() != 0 {
		t.Errorf("Expected function not to run, ran %d times", calls.Load())
	}
}

// TestAsyncErrorPropagation tests that errors from the asynchronous function are propagated.
func TestAsyncErrorPropagation(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("lookup failed")

	future := async.Async(context.Background(), 42, func(ctx context.Context, num int) (bool, error) {
		return false, expectedErr
	})

	_, err := future.Await()
	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error '%v', got: %v", expectedErr, err)
	}
}

// TestAsyncPanic verifies panics are converted into ErrPanic.
func TestAsyncPanic(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), 0, func(ctx context.Context, n int) (bool, error) {
		panic("boom")
	})

	_, err := future.Await()
	if !errors.Is(err, async.ErrPanic) {
		t.Errorf("Expected ErrPanic, got: %v", err)
	}
}

// TestAwaitContext verifies waiting stops when the caller's context ends.
func TestAwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	future := async.Async(context.Background(), 0, func(ctx context.Context, n int) (bool, error) {
		<-release
		return true, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := future.AwaitContext(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got: %v", err)
	}
	if future.IsComplete() {
		t.Error("Expected future to still be running")
	}
}

// TestIsComplete tests non-blocking completion checks.
func TestIsComplete(t *testing.T) {
	t.Parallel()

	future := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return n, nil
	})

	if future.IsComplete() {
		t.Error("Expected future to be incomplete right after start")
	}
	if _, err := future.Await(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !future.IsComplete() {
		t.Error("Expected future to be complete after Await")
	}
}

// TestWaitAll tests collecting results in order and stopping at the first error.
func TestWaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, n int) (int, error) {
		time.Sleep(time.Duration(5-n) * time.Millisecond)
		return n * 2, nil
	}

	results, err := async.WaitAll(
		async.Async(ctx, 1, double),
		async.Async(ctx, 2, double),
		async.Async(ctx, 3, double),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []int{2, 4, 6} {
		if results[i] != want {
			t.Errorf("result %d: expected %d, got %d", i, want, results[i])
		}
	}

	failure := errors.New("second failed")
	_, err = async.WaitAll(
		async.Async(ctx, 1, double),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return 0, failure }),
	)
	if !errors.Is(err, failure) {
		t.Errorf("Expected %v, got %v", failure, err)
	}
}
