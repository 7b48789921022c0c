package models

// SentimentProfile is the parsed multi-dimensional measurement for one
// article. Every numeric field is validated into [0,1] before a profile is
// handed to the reducer.
type SentimentProfile struct {
	Tone           string          `json:"tone"`
	Emotions       EmotionScores   `json:"emotions"`
	Rhetoric       RhetoricScores  `json:"rhetoric"`
	LoadedLanguage float64         `json:"loaded_language"`
	Certainty      CertaintyScores `json:"certainty"`
}

type EmotionScores struct {
	Joy          float64 `json:"joy"`
	Trust        float64 `json:"trust"`
	Fear         float64 `json:"fear"`
	Anger        float64 `json:"anger"`
	Sadness      float64 `json:"sadness"`
	Anticipation float64 `json:"anticipation"`
	Disgust      float64 `json:"disgust"`
	Surprise     float64 `json:"surprise"`
}

type RhetoricScores struct {
	Analytical float64 `json:"analytical"`
	Supportive float64 `json:"supportive"`
	Persuasive float64 `json:"persuasive"`
	Alarmist   float64 `json:"alarmist"`
	Dismissive float64 `json:"dismissive"`
	Sarcastic  float64 `json:"sarcastic"`
}

type CertaintyScores struct {
	Certainty   float64 `json:"certainty"`
	Speculation float64 `json:"speculation"`
}

// SentimentResult is the reduced single score plus its label bucket.
type SentimentResult struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
	Model string  `json:"model"`
}

const (
	SentimentLabelPositive = "Positive"
	SentimentLabelNegative = "Negative"
	SentimentLabelNeutral  = "Neutral"
)
