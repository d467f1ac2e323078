package api

type MessageResponse struct {
	Message string `json:"message"`
}

type SummarizedNewsResponse struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

type RecapResponse struct {
	Query          string                   `json:"query"`
	SummarizedNews []SummarizedNewsResponse `json:"summarized_news"`
}

type DirectAnswerResponse struct {
	Query      string `json:"query"`
	GPTSummary string `json:"gpt_summary"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
