package recap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"newsrecap/internal/domain"
	"newsrecap/internal/summarizer"
)

type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]domain.NewsItem, error)
}

// Result is one of three shapes selected by Branch:
// UsageHint for BranchNoQuery, SummarizedNews for BranchNewsAndSummarize,
// DirectSummary for BranchDirectAnswer.
type Result struct {
	Branch         Branch
	Query          string
	UsageHint      string
	SummarizedNews []domain.SummarizedNewsItem
	DirectSummary  string
}

type Service struct {
	news        NewsSearcher
	summarizer  summarizer.Summarizer
	parallelism int
	log         *slog.Logger
}

func NewService(
	news NewsSearcher,
	s summarizer.Summarizer,
	parallelism int,
	log *slog.Logger,
) *Service {
	if parallelism <= 0 {
		parallelism = 1
	}

	return &Service{
		news:        news,
		summarizer:  s,
		parallelism: parallelism,
		log:         log,
	}
}

// Handle answers one query. The only error it returns comes from the news
// search; summarization failures are folded into the item summaries.
func (s *Service) Handle(ctx context.Context, query string) (Result, error) {
	branch := Classify(query)

	switch branch {
	case BranchNoQuery:
		return Result{Branch: branch, UsageHint: UsageHint}, nil

	case BranchNewsAndSummarize:
		cleaned := CleanQuery(query)

		items, err := s.news.Search(ctx, cleaned)
		if err != nil {
			return Result{}, fmt.Errorf("search news: %w", err)
		}

		s.log.InfoContext(ctx, "News is found",
			"query", cleaned,
			"itemCount", len(items),
			"parallelism", s.parallelism)

		return Result{
			Branch:         branch,
			Query:          cleaned,
			SummarizedNews: s.summarizeItems(ctx, items),
		}, nil

	default:
		return Result{
			Branch:        branch,
			Query:         query,
			DirectSummary: s.summarizer.Summarize(ctx, directPrompt(query)),
		}, nil
	}
}

// summarizeItems keeps the input order; each slot is written by exactly one worker.
func (s *Service) summarizeItems(
	ctx context.Context,
	items []domain.NewsItem,
) []domain.SummarizedNewsItem {
	summarized := make([]domain.SummarizedNewsItem, len(items))
	if len(items) == 0 {
		return summarized
	}

	workerCount := min(s.parallelism, len(items))

	tasks := make(chan int)
	var wg sync.WaitGroup

	for range workerCount {
		wg.Go(func() {
			for i := range tasks {
				summarized[i] = s.summarizeItem(ctx, items[i])
			}
		})
	}

	for i := range items {
		tasks <- i
	}

	close(tasks)
	wg.Wait()

	return summarized
}

func (s *Service) summarizeItem(
	ctx context.Context,
	item domain.NewsItem,
) domain.SummarizedNewsItem {
	return domain.SummarizedNewsItem{
		Title:   item.Title,
		Link:    item.Link,
		Summary: s.summarizer.Summarize(ctx, itemPrompt(item.Title, item.Summary)),
	}
}
