package domain

import (
	"errors"
	"fmt"
)

// ErrAnalysisFailed is the generic message shown for analyzer failures when
// debug detail is suppressed. Aggregation failures wrap it.
var ErrAnalysisFailed = errors.New("analysis failed")

// ValidationError rejects a request before any analyzer runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Message
	}
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Message)
}

// AnalyzerError wraps a failure raised by a single theory analyzer.
type AnalyzerError struct {
	Theory TheoryID
	Err    error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer %s: %v", e.Theory, e.Err)
}

func (e *AnalyzerError) Unwrap() error { return e.Err }

// IsAnalysisFailure reports whether err comes from running or aggregating
// analyzers rather than from the request or the caller's environment.
func IsAnalysisFailure(err error) bool {
	var ae *AnalyzerError
	return errors.As(err, &ae) || errors.Is(err, ErrAnalysisFailed)
}

// PublicMessage renders err for a caller. Analysis failures keep their
// detail only when debug is set; everything else, validation errors
// included, is shown verbatim.
func PublicMessage(err error, debug bool) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	if debug || !IsAnalysisFailure(err) {
		return err.Error()
	}
	return ErrAnalysisFailed.Error()
}
