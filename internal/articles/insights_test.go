package articles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeShortTextReturnedWhole(t *testing.T) {
	text := "One sentence. Another one."
	assert.Equal(t, text, Summarize(text))
}

func TestSummarizeTruncatesToTwoSentences(t *testing.T) {
	text := "First sentence here. Second sentence here. Third sentence here. Fourth."
	summary := Summarize(text)

	assert.Equal(t, "First sentence here. Second sentence here. ..", summary)
}

func TestKeywordsFilterStopWordsAndShortWords(t *testing.T) {
	text := "The election officials said the election process and the election law were challenged in court, officials said."
	keywords := Keywords(text)

	require.NotEmpty(t, keywords)
	assert.Equal(t, "election", keywords[0])
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "and")
	assert.LessOrEqual(t, len(keywords), keywordCount)
}

func TestInsights(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 400)) + ". Done."
	insights := Insights(text)

	assert.Equal(t, 401, insights.WordCount)
	assert.Equal(t, 2, insights.SentenceCount)
	assert.Equal(t, 2, insights.ReadingTimeMinutes)
}

func TestInsightsReadingTimeFloorsAtOneMinute(t *testing.T) {
	assert.Equal(t, 1, Insights("tiny piece of text").ReadingTimeMinutes)
}

func TestCorpusLookups(t *testing.T) {
	all := All()
	require.Len(t, all, 2)

	article, ok := ByID(1)
	require.True(t, ok)
	assert.Contains(t, article.Title, "SAVE America Act")

	_, ok = ByID(99)
	assert.False(t, ok)

	reference, ok := Reference(1)
	require.True(t, ok)
	assert.Equal(t, 2, reference.ID)
}

func TestSerializePopulatesEveryField(t *testing.T) {
	article, ok := ByID(2)
	require.True(t, ok)

	serialized := Serialize(article)

	assert.Equal(t, article.Title, serialized.Title)
	assert.NotEmpty(t, serialized.Summary)
	assert.NotEmpty(t, serialized.QuickSentiment.Label)
	assert.Greater(t, serialized.Insights.WordCount, 100)
}

func TestFromSearchResultFallsBackToDescription(t *testing.T) {
	raw := newsAPIArticleFixture("", "just the description here")
	serialized := FromSearchResult(raw)
	assert.Equal(t, "just the description here", serialized.Content)

	raw = newsAPIArticleFixture("full content wins over description", "description")
	serialized = FromSearchResult(raw)
	assert.Equal(t, "full content wins over description", serialized.Content)
}
