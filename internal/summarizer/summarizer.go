package summarizer

import (
	"context"
)

const (
	SystemPrompt = "뉴스 및 경제 정보를 요약하는 전문가입니다."
	// UserPromptSuffix is appended to the content to ask for a summary.
	UserPromptSuffix = "에 대해 요약해줘."
	// FailurePrefix starts every summary that stands in for an error.
	FailurePrefix = "요약 실패: "

	Temperature     = 0.3
	MaxOutputTokens = 100
)

// Summarizer produces a summary for the given content. It never fails:
// errors come back as a string starting with FailurePrefix.
type Summarizer interface {
	Summarize(ctx context.Context, content string) string
}

func failureSummary(err error) string {
	return FailurePrefix + err.Error()
}
