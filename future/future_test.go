package future_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/halfapplied/curried/future"
)

func TestGo_Success(t *testing.T) {
	ctx := context.Background()

	f := future.Go(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "ok", nil
	})

	select {
	case <-f.Done():
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for future to settle")
	}

	v, err := f.Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" {
		t.Fatalf("unexpected value: got %v", v)
	}
}

func TestGo_Failure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	f := future.Go(ctx, func(ctx context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Await(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the payload error, got: %v", err)
	}
}

func TestGo_PanicSettlesAsFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	f := future.Go(ctx, func(ctx context.Context) (int, error) {
		panic(boom)
	})
	if _, err := f.Await(ctx); !errors.Is(err, boom) {
		t.Fatalf("a recovered error must keep its identity, got: %v", err)
	}

	f2 := future.Go(ctx, func(ctx context.Context) (int, error) {
		panic("not an error")
	})
	if _, err := f2.Await(ctx); err == nil {
		t.Fatal("expected a wrapped panic value")
	}
}

func TestGo_ContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	f := future.Go(ctx, func(ctx context.Context) (int, error) {
		ran = true
		return 1, nil
	})

	_, err := f.Await(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if ran {
		t.Fatal("payload must not start on a done context")
	}
}

func TestAwait_Repeatable(t *testing.T) {
	ctx := context.Background()
	f := future.Resolve(7)

	for i := 0; i < 3; i++ {
		v, err := f.Await(ctx)
		if err != nil || v != 7 {
			t.Fatalf("await %d: got %v, %v", i, v, err)
		}
	}
}

func TestAwait_GivingUpDoesNotCorrupt(t *testing.T) {
	block := make(chan struct{})
	f := future.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-block
		return 42, nil
	})

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := f.Await(waitCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got: %v", err)
	}

	close(block)
	v, err := f.Await(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("future corrupted by abandoned await: got %v, %v", v, err)
	}
}

func TestRejectAndResolve(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := future.Reject[int](boom).Await(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}

	v, err := future.Resolve("done").Await(ctx)
	if err != nil || v != "done" {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestAwaitAny_ErasedView(t *testing.T) {
	ctx := context.Background()

	var pending future.Awaitable = future.Resolve(3)
	v, err := pending.AwaitAny(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := v.(int); !ok || got != 3 {
		t.Fatalf("unexpected erased value: %v", v)
	}
}
