package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mats16/daily-aws-news/internal/domain"
	"github.com/mats16/daily-aws-news/internal/ports"
)

// translateCeiling bounds in-flight translation calls per batch, keeping a
// large announcement day inside the translation service's rate limits.
const translateCeiling = 5

// translateBatch translates texts positionally: output i always corresponds
// to input i. A failed or timed-out call falls back to its source text, so
// the result always has len(texts) entries and the batch never fails as a
// whole.
func translateBatch(ctx context.Context, tr ports.Translator, logger *slog.Logger, texts []string, from, to domain.Language, timeout time.Duration) []string {
	out := make([]string, len(texts))
	sem := make(chan struct{}, translateCeiling)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			translated, err := tr.Translate(callCtx, text, from, to)
			if err != nil {
				logger.Warn("translation failed, keeping source text", "from", from, "to", to, "error", err)
				out[i] = text
				return
			}
			out[i] = translated
		}(i, text)
	}

	wg.Wait()
	return out
}
