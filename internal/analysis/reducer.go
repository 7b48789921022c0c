package analysis

import "newsinsight/internal/models"

// Dimension weights for the sentiment reduction. They sum to 1.0 over
// [-1,1]-normalized dimensions, so the combined score is bounded by
// construction.
const (
	weightTone             = 0.25
	weightEmotionPolarity  = 0.25
	weightEmotionIntensity = 0.15
	weightRhetoricPolarity = 0.15
	weightLoadedLanguage   = 0.10
	weightCertainty        = 0.10
)

// labelThreshold separates the Positive/Negative buckets from Neutral,
// symmetrically: score > +0.15 is Positive, score < -0.15 is Negative.
const labelThreshold = 0.15

// ReduceSentiment collapses a validated profile into a single bounded score
// and label. Pure and deterministic: the same profile always reduces to the
// same result.
func ReduceSentiment(profile models.SentimentProfile) models.SentimentResult {
	var tonePolarity float64
	switch profile.Tone {
	case "positive":
		tonePolarity = 1
	case "negative":
		tonePolarity = -1
	}

	em := profile.Emotions
	emotionPolarity := ((em.Joy + em.Trust) - (em.Anger + em.Fear + em.Sadness + em.Disgust)) / 6
	emotionIntensity := (em.Joy + em.Trust + em.Fear + em.Anger + em.Sadness +
		em.Anticipation + em.Disgust + em.Surprise) / 8

	// persuasive cuts both ways, so it is collected but left out of polarity
	rh := profile.Rhetoric
	rhetoricPolarity := ((rh.Supportive + rh.Analytical) - (rh.Alarmist + rh.Dismissive + rh.Sarcastic)) / 5

	loadedLanguageSignal := -profile.LoadedLanguage
	certaintySignal := profile.Certainty.Certainty - profile.Certainty.Speculation

	score := weightTone*tonePolarity +
		weightEmotionPolarity*emotionPolarity +
		weightEmotionIntensity*emotionIntensity +
		weightRhetoricPolarity*rhetoricPolarity +
		weightLoadedLanguage*loadedLanguageSignal +
		weightCertainty*certaintySignal

	// in-range profiles cannot land outside [-1,1], but edge values that
	// slipped past boundary validation must not either
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}

	label := models.SentimentLabelNeutral
	if score > labelThreshold {
		label = models.SentimentLabelPositive
	} else if score < -labelThreshold {
		label = models.SentimentLabelNegative
	}

	return models.SentimentResult{Score: score, Label: label}
}
