package domain

// NewsItem is one search hit with markup already stripped from Title and Summary.
type NewsItem struct {
	Title   string
	Link    string
	Summary string
}

// SummarizedNewsItem replaces the search snippet with a model-written summary.
type SummarizedNewsItem struct {
	Title   string
	Link    string
	Summary string
}
