package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mats16/daily-aws-news/internal/domain"
)

type funcTranslator func(ctx context.Context, text string, source, target domain.Language) (string, error)

func (f funcTranslator) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	return f(ctx, text, source, target)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslateBatchKeepsPositions(t *testing.T) {
	t.Parallel()

	texts := make([]string, 20)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	tr := funcTranslator(func(_ context.Context, text string, _, _ domain.Language) (string, error) {
		// Uneven latency shuffles completion order.
		time.Sleep(time.Duration(len(text)%4) * time.Millisecond)
		return "ja:" + text, nil
	})

	out := translateBatch(context.Background(), tr, discardLogger(), texts, domain.English, domain.Japanese, time.Second)

	if len(out) != len(texts) {
		t.Fatalf("got %d results, want %d", len(out), len(texts))
	}
	for i, text := range texts {
		if out[i] != "ja:"+text {
			t.Errorf("position %d = %q, want %q", i, out[i], "ja:"+text)
		}
	}
}

func TestTranslateBatchFallsBackOnError(t *testing.T) {
	t.Parallel()

	texts := []string{"keep-0", "fail-1", "keep-2", "fail-3"}
	tr := funcTranslator(func(_ context.Context, text string, _, _ domain.Language) (string, error) {
		if strings.HasPrefix(text, "fail") {
			return "", errors.New("service unavailable")
		}
		return "ja:" + text, nil
	})

	out := translateBatch(context.Background(), tr, discardLogger(), texts, domain.English, domain.Japanese, time.Second)

	want := []string{"ja:keep-0", "fail-1", "ja:keep-2", "fail-3"}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestTranslateBatchBoundsConcurrency(t *testing.T) {
	t.Parallel()

	var current, peak int64
	tr := funcTranslator(func(_ context.Context, text string, _, _ domain.Language) (string, error) {
		cur := atomic.AddInt64(&current, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&current, -1)
		return text, nil
	})

	texts := make([]string, 40)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	out := translateBatch(context.Background(), tr, discardLogger(), texts, domain.English, domain.Japanese, time.Second)

	if len(out) != len(texts) {
		t.Fatalf("got %d results, want %d", len(out), len(texts))
	}
	if got := atomic.LoadInt64(&peak); got > translateCeiling {
		t.Errorf("observed %d concurrent calls, ceiling is %d", got, translateCeiling)
	}
}

func TestTranslateBatchTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	tr := funcTranslator(func(ctx context.Context, _ string, _, _ domain.Language) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	out := translateBatch(context.Background(), tr, discardLogger(), []string{"unchanged"}, domain.English, domain.Japanese, 10*time.Millisecond)

	if out[0] != "unchanged" {
		t.Errorf("timed-out call must keep the source text, got %q", out[0])
	}
}

func TestTranslateBatchEmptyInput(t *testing.T) {
	t.Parallel()

	called := false
	tr := funcTranslator(func(_ context.Context, text string, _, _ domain.Language) (string, error) {
		called = true
		return text, nil
	})

	out := translateBatch(context.Background(), tr, discardLogger(), nil, domain.English, domain.Japanese, time.Second)
	if len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}
	if called {
		t.Error("translator must not be called for an empty batch")
	}
}
