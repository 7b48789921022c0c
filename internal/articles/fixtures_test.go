package articles

import "newsinsight/internal/models"

func newsAPIArticleFixture(content string, description string) models.NewsAPIArticle {
	var raw models.NewsAPIArticle
	raw.Source.Name = "Example Wire"
	raw.Title = "Example headline"
	raw.Description = description
	raw.Content = content
	raw.URL = "https://example.com/story"
	raw.PublishedAt = "2026-02-18T12:00:00Z"
	return raw
}
