package models

// Article is one entry in the bundled demo corpus.
type Article struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// ArticleInsights are the cheap, locally computed stats shown on listings.
type ArticleInsights struct {
	WordCount          int      `json:"word_count"`
	SentenceCount      int      `json:"sentence_count"`
	Keywords           []string `json:"keywords"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
}

// QuickSentiment is the lexical (VADER) score used on listings where a full
// model round-trip would be too slow.
type QuickSentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// SerializedArticle is the listing shape returned by the API.
type SerializedArticle struct {
	Article
	Summary        string          `json:"summary"`
	QuickSentiment QuickSentiment  `json:"quick_sentiment"`
	Insights       ArticleInsights `json:"insights"`
}
