package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"newsinsight/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Quick-score thresholds; looser than the model-backed reducer since VADER
// compound scores cluster near zero for newswire prose.
const quickScoreThreshold = 0.20

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// QuickScore runs the lexical VADER analyzer over article text. This is the
// cheap listing-page score; the weighted model-backed analysis lives in the
// analysis package.
func QuickScore(text string) models.QuickSentiment {
	plainText := ConvertMarkdownToText(text)

	compound := analyzer.PolarityScores(plainText).Compound

	label := "neutral"
	if compound >= quickScoreThreshold {
		label = "positive"
	} else if compound <= -quickScoreThreshold {
		label = "negative"
	}

	return models.QuickSentiment{Score: compound, Label: label}
}
