package analysis

import "fmt"

// ParseErrorKind tells callers which validation step rejected the payload.
type ParseErrorKind string

const (
	ParseErrNoPayload        ParseErrorKind = "no_payload"
	ParseErrMalformedPayload ParseErrorKind = "malformed_payload"
	ParseErrMissingField     ParseErrorKind = "missing_field"
	ParseErrOutOfRange       ParseErrorKind = "out_of_range"
	ParseErrBadTone          ParseErrorKind = "bad_tone"
)

// ParseError means sanitized model output did not yield a valid structured
// payload for the requested purpose. Field names which field failed, when
// one did.
type ParseError struct {
	Kind   ParseErrorKind
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse failed (%s) on field %q: %s", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("parse failed (%s): %s", e.Kind, e.Detail)
}

// AnalysisErrorKind is the machine-distinguishable failure class surfaced to
// callers of the orchestrator.
type AnalysisErrorKind string

const (
	AnalysisErrUpstream        AnalysisErrorKind = "upstream"
	AnalysisErrMalformedOutput AnalysisErrorKind = "malformed_output"
	AnalysisErrBadRequest      AnalysisErrorKind = "bad_request"
)

// AnalysisError is the orchestrator-level failure value. Raw keeps the
// original model text around for diagnostics when output failed to parse.
type AnalysisError struct {
	Kind    AnalysisErrorKind
	Message string
	Raw     string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis failed (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("analysis failed (%s): %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
