package analysis

import (
	"encoding/json"
	"strings"

	"newsinsight/internal/models"
)

// Accepted tone categories for a sentiment payload.
var validTones = map[string]bool{
	"positive": true,
	"neutral":  true,
	"negative": true,
}

var emotionKeys = []string{"joy", "trust", "fear", "anger", "sadness", "anticipation", "disgust", "surprise"}

var rhetoricKeys = []string{"analytical", "supportive", "persuasive", "alarmist", "dismissive", "sarcastic"}

var certaintyKeys = []string{"certainty", "speculation"}

// Required top-level keys for the free-form report purposes. Reports are not
// deep-normalized beyond this.
var (
	rhetoricReportKeys   = []string{"overall_tone", "devices", "bias_indicators"}
	comparisonReportKeys = []string{"framing_differences", "source_selection", "assessment"}
)

// extractFirstJSON locates the first balanced JSON object embedded in text,
// ignoring any prose around it. Models are told to return bare JSON but
// routinely wrap it anyway.
func extractFirstJSON(text string) (map[string]any, *ParseError) {
	sawBrace := false
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		sawBrace = true

		var payload map[string]any
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&payload); err == nil {
			return payload, nil
		}
	}

	if sawBrace {
		return nil, &ParseError{Kind: ParseErrMalformedPayload, Detail: "structured block is not well-formed JSON"}
	}
	return nil, &ParseError{Kind: ParseErrNoPayload, Detail: "no structured block found in model output"}
}

// ParseSentimentProfile validates sanitized model text against the full
// sentiment schema. Every field must be present and every numeric value must
// already be in [0,1]; nothing is clamped here.
func ParseSentimentProfile(text string) (models.SentimentProfile, error) {
	var profile models.SentimentProfile

	payload, perr := extractFirstJSON(text)
	if perr != nil {
		return profile, perr
	}

	tone, err := stringField(payload, "tone")
	if err != nil {
		return profile, err
	}
	if !validTones[tone] {
		return profile, &ParseError{Kind: ParseErrBadTone, Field: "tone",
			Detail: "tone must be positive, neutral, or negative, got " + tone}
	}
	profile.Tone = tone

	emotions, err := unitValueMap(payload, "emotions", emotionKeys)
	if err != nil {
		return profile, err
	}
	profile.Emotions = models.EmotionScores{
		Joy:          emotions["joy"],
		Trust:        emotions["trust"],
		Fear:         emotions["fear"],
		Anger:        emotions["anger"],
		Sadness:      emotions["sadness"],
		Anticipation: emotions["anticipation"],
		Disgust:      emotions["disgust"],
		Surprise:     emotions["surprise"],
	}

	rhetoric, err := unitValueMap(payload, "rhetoric", rhetoricKeys)
	if err != nil {
		return profile, err
	}
	profile.Rhetoric = models.RhetoricScores{
		Analytical: rhetoric["analytical"],
		Supportive: rhetoric["supportive"],
		Persuasive: rhetoric["persuasive"],
		Alarmist:   rhetoric["alarmist"],
		Dismissive: rhetoric["dismissive"],
		Sarcastic:  rhetoric["sarcastic"],
	}

	loaded, err := unitValue(payload, "loaded_language")
	if err != nil {
		return profile, err
	}
	profile.LoadedLanguage = loaded

	certainty, err := unitValueMap(payload, "certainty", certaintyKeys)
	if err != nil {
		return profile, err
	}
	profile.Certainty = models.CertaintyScores{
		Certainty:   certainty["certainty"],
		Speculation: certainty["speculation"],
	}

	return profile, nil
}

// ParseRhetoricReport checks required top-level keys and returns the payload
// as-is.
func ParseRhetoricReport(text string) (models.RhetoricReport, error) {
	payload, perr := extractFirstJSON(text)
	if perr != nil {
		return nil, perr
	}
	if err := requireKeys(payload, rhetoricReportKeys); err != nil {
		return nil, err
	}
	return models.RhetoricReport(payload), nil
}

// ParseComparisonReport checks required top-level keys and returns the
// payload as-is.
func ParseComparisonReport(text string) (models.ComparisonReport, error) {
	payload, perr := extractFirstJSON(text)
	if perr != nil {
		return nil, perr
	}
	if err := requireKeys(payload, comparisonReportKeys); err != nil {
		return nil, err
	}
	return models.ComparisonReport(payload), nil
}

func requireKeys(payload map[string]any, keys []string) error {
	for _, key := range keys {
		if _, ok := payload[key]; !ok {
			return &ParseError{Kind: ParseErrMissingField, Field: key,
				Detail: "required field is missing"}
		}
	}
	return nil
}

func stringField(payload map[string]any, field string) (string, error) {
	value, ok := payload[field]
	if !ok {
		return "", &ParseError{Kind: ParseErrMissingField, Field: field, Detail: "required field is missing"}
	}
	str, ok := value.(string)
	if !ok {
		return "", &ParseError{Kind: ParseErrMalformedPayload, Field: field, Detail: "field is not a string"}
	}
	return strings.ToLower(strings.TrimSpace(str)), nil
}

func unitValue(payload map[string]any, field string) (float64, error) {
	value, ok := payload[field]
	if !ok {
		return 0, &ParseError{Kind: ParseErrMissingField, Field: field, Detail: "required field is missing"}
	}
	num, ok := value.(float64)
	if !ok {
		return 0, &ParseError{Kind: ParseErrOutOfRange, Field: field, Detail: "field is not numeric"}
	}
	if num < 0 || num > 1 {
		return 0, &ParseError{Kind: ParseErrOutOfRange, Field: field, Detail: "value must be in [0,1]"}
	}
	return num, nil
}

func unitValueMap(payload map[string]any, field string, keys []string) (map[string]float64, error) {
	value, ok := payload[field]
	if !ok {
		return nil, &ParseError{Kind: ParseErrMissingField, Field: field, Detail: "required field is missing"}
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, &ParseError{Kind: ParseErrMalformedPayload, Field: field, Detail: "field is not an object"}
	}

	out := make(map[string]float64, len(keys))
	for _, key := range keys {
		num, err := unitValue(nested, key)
		if err != nil {
			// rewrite the field path so the caller sees where it failed
			perr := err.(*ParseError)
			perr.Field = field + "." + key
			return nil, perr
		}
		out[key] = num
	}
	return out, nil
}
