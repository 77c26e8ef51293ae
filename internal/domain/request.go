package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MinJokeLength = 5
	MaxJokeLength = 1000

	// ContextPersona is the context key analyzers read the persona from.
	ContextPersona = "persona"
)

// AnalyzeRequest is the validated input of an analysis.
type AnalyzeRequest struct {
	JokeText string         `json:"joke_text" validate:"required,min=5,max=1000"`
	Context  map[string]any `json:"context,omitempty"`
	Persona  string         `json:"persona,omitempty" validate:"omitempty,max=64"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks length bounds. String lengths are counted in runes.
func (r AnalyzeRequest) Validate() error {
	err := requestValidator().Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// AnalysisContext returns the context passed to analyzers: a copy of
// r.Context with the persona filled in when the context does not carry one.
// A nil persona value counts as absent.
func (r AnalyzeRequest) AnalysisContext() map[string]any {
	ctx := make(map[string]any, len(r.Context)+1)
	for k, v := range r.Context {
		ctx[k] = v
	}
	if v, ok := ctx[ContextPersona]; (!ok || v == nil) && r.Persona != "" {
		ctx[ContextPersona] = r.Persona
	}
	return ctx
}
