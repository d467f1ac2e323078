package recap

import (
	"strings"
)

const (
	// TriggerWord in a query asks for a news search plus per-article summaries.
	TriggerWord = "재현"

	UsageHint = "검색어를 입력하세요. 예: /custom_api?query=삼성전자"

	directPromptSuffix = "에 대한 최신 뉴스를 요약해줘."
)

type Branch int

const (
	BranchNoQuery Branch = iota
	BranchNewsAndSummarize
	BranchDirectAnswer
)

func (b Branch) String() string {
	switch b {
	case BranchNoQuery:
		return "no_query"
	case BranchNewsAndSummarize:
		return "news_and_summarize"
	case BranchDirectAnswer:
		return "direct_answer"
	default:
		return "unknown"
	}
}

func IsRecapRequest(query string) bool {
	return strings.Contains(query, TriggerWord)
}

// CleanQuery removes every TriggerWord occurrence and trims the rest.
func CleanQuery(query string) string {
	return strings.TrimSpace(strings.ReplaceAll(query, TriggerWord, ""))
}

func Classify(query string) Branch {
	switch {
	case query == "":
		return BranchNoQuery
	case IsRecapRequest(query):
		return BranchNewsAndSummarize
	default:
		return BranchDirectAnswer
	}
}

func itemPrompt(title string, summary string) string {
	return "제목: " + title + "\n내용: " + summary
}

func directPrompt(query string) string {
	return query + directPromptSuffix
}
