package articles

import (
	"sort"
	"strings"

	"newsinsight/internal/models"
	"newsinsight/internal/sentiment"
)

const (
	summaryMaxSentences = 2
	keywordCount        = 5
	wordsPerMinute      = 200 // average reading speed
)

var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"a": true, "an": true, "is": true, "are": true, "was": true, "were": true,
	"this": true, "that": true, "it": true, "as": true, "be": true, "from": true,
}

// Summarize extracts the first few sentences as a concise summary.
func Summarize(text string) string {
	sentences := splitSentences(text)
	if len(sentences) <= summaryMaxSentences {
		return text
	}
	return strings.Join(sentences[:summaryMaxSentences], ". ") + ". .."
}

// Keywords returns the most frequent non-stop-words in the text.
func Keywords(text string) []string {
	freq := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, `.,!?";()[]{}'`)
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		freq[word]++
	}

	words := make([]string, 0, len(freq))
	for word := range freq {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > keywordCount {
		words = words[:keywordCount]
	}
	return words
}

// Insights computes the cheap local stats shown on article listings.
func Insights(text string) models.ArticleInsights {
	wordCount := len(strings.Fields(text))

	readingTime := wordCount / wordsPerMinute
	if readingTime < 1 {
		readingTime = 1
	}

	return models.ArticleInsights{
		WordCount:          wordCount,
		SentenceCount:      len(splitSentences(text)),
		Keywords:           Keywords(text),
		ReadingTimeMinutes: readingTime,
	}
}

// Serialize builds the full listing shape for one article: summary, lexical
// quick score, and insights. No model round-trip happens here.
func Serialize(article models.Article) models.SerializedArticle {
	return models.SerializedArticle{
		Article:        article,
		Summary:        Summarize(article.Content),
		QuickSentiment: sentiment.QuickScore(article.Content),
		Insights:       Insights(article.Content),
	}
}

// FromSearchResult normalizes a raw NewsAPI article into the same listing
// shape the corpus uses.
func FromSearchResult(raw models.NewsAPIArticle) models.SerializedArticle {
	content := raw.Content
	if content == "" {
		content = raw.Description
	}
	if content == "" {
		content = raw.Title
	}

	return Serialize(models.Article{
		Title:       raw.Title,
		Content:     content,
		URL:         raw.URL,
		Source:      raw.Source.Name,
		PublishedAt: raw.PublishedAt,
	})
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range strings.Split(text, ".") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
