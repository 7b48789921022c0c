package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// promptTruncateLimit caps article text embedded in a prompt. The instant
// models have a 131K context window, so a single article never needs
// chunking; the cap just keeps pathological inputs out of the bill.
const promptTruncateLimit = 4000

const systemPrompt = `You are a news article analyst. You MUST return only valid JSON with no Markdown formatting, no explanations, and no text before or after the JSON object.`

const sentimentPromptFormat = `Classify the emotional and rhetorical profile of this news article.

Article:
%s

Return a JSON object formatted exactly as follows, every numeric value between 0.0 and 1.0:
{
  "tone": "positive" | "neutral" | "negative",
  "emotions": {"joy": 0.0, "trust": 0.0, "fear": 0.0, "anger": 0.0, "sadness": 0.0, "anticipation": 0.0, "disgust": 0.0, "surprise": 0.0},
  "rhetoric": {"analytical": 0.0, "supportive": 0.0, "persuasive": 0.0, "alarmist": 0.0, "dismissive": 0.0, "sarcastic": 0.0},
  "loaded_language": 0.0,
  "certainty": {"certainty": 0.0, "speculation": 0.0}
}`

const rhetoricPromptFormat = `Analyze this news article for tone and rhetorical devices.

Article:
%s

Return a JSON object formatted exactly as follows:
{
  "overall_tone": "e.g. neutral, persuasive, alarmist, celebratory",
  "devices": [{"device": "name", "example": "quote from the text"}],
  "bias_indicators": ["any signs of bias or framing"]
}`

const comparisonPromptFormat = `Compare these two news articles covering similar topics.

Article 1:
%s

Article 2:
%s

Return a JSON object formatted exactly as follows:
{
  "framing_differences": "how each article frames the story",
  "tone_comparison": "compare the tone and emotional appeal",
  "source_selection": "differences in sources cited or perspectives included",
  "key_differences": "facts or angles one includes that the other doesn't",
  "assessment": "which article appears more balanced"
}`

func buildSentimentPrompt(articleText string) string {
	return fmt.Sprintf(sentimentPromptFormat, truncateText(articleText))
}

func buildRhetoricPrompt(articleText string) string {
	return fmt.Sprintf(rhetoricPromptFormat, truncateText(articleText))
}

func buildComparisonPrompt(primaryText string, referenceText string) string {
	return fmt.Sprintf(comparisonPromptFormat, truncateText(primaryText), truncateText(referenceText))
}

func truncateText(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= promptTruncateLimit {
		return trimmed
	}
	// Back the cut up to a rune boundary so a multi-byte rune is never split.
	cut := promptTruncateLimit
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return strings.TrimRight(trimmed[:cut], " \t\n") + " ..."
}
