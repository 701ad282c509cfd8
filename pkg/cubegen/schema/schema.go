// Package schema checks generated objects against the output schema.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cognicore/cubegen/pkg/cubegen/cube"
)

//go:embed object.schema.json
var objectSchema string

const schemaURL = "https://cognicore.dev/cubegen/object.schema.json"

// Validator decides whether an object conforms to the output schema.
// Callers treat the report as authoritative but never fatal.
type Validator interface {
	Validate(obj cube.Object) Report
}

// Report is the outcome of a validation.
type Report struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes one violated constraint.
type FieldError struct {
	Path    string         `json:"path"`
	Message string         `json:"message"`
	Keyword string         `json:"keyword"`
	Params  map[string]any `json:"params,omitempty"`
}

func (e FieldError) String() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

// JSONSchema validates against the embedded object schema.
type JSONSchema struct {
	schema *jsonschema.Schema
}

// NewJSONSchema compiles the embedded schema.
func NewJSONSchema() (*JSONSchema, error) {
	s, err := jsonschema.CompileString(schemaURL, objectSchema)
	if err != nil {
		return nil, fmt.Errorf("compile object schema: %w", err)
	}
	return &JSONSchema{schema: s}, nil
}

// MustJSONSchema is NewJSONSchema for package-level defaults; the embedded
// schema is fixed at build time.
func MustJSONSchema() *JSONSchema {
	v, err := NewJSONSchema()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate implements Validator.
func (v *JSONSchema) Validate(obj cube.Object) Report {
	raw, err := json.Marshal(obj)
	if err != nil {
		return invalid(FieldError{Message: err.Error(), Keyword: "encode"})
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invalid(FieldError{Message: err.Error(), Keyword: "encode"})
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return Report{Valid: true}
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return invalid(FieldError{Message: err.Error(), Keyword: "validate"})
	}

	var report Report
	collectLeaves(verr, &report.Errors)
	if len(report.Errors) == 0 {
		report.Errors = append(report.Errors, toFieldError(verr))
	}
	return report
}

// collectLeaves flattens the error tree to the causes that name a concrete
// keyword violation.
func collectLeaves(e *jsonschema.ValidationError, out *[]FieldError) {
	if len(e.Causes) == 0 {
		*out = append(*out, toFieldError(e))
		return
	}
	for _, c := range e.Causes {
		collectLeaves(c, out)
	}
}

func toFieldError(e *jsonschema.ValidationError) FieldError {
	keyword := e.KeywordLocation
	if i := strings.LastIndex(keyword, "/"); i >= 0 {
		keyword = keyword[i+1:]
	}
	return FieldError{
		Path:    e.InstanceLocation,
		Message: e.Message,
		Keyword: keyword,
		Params: map[string]any{
			"keywordLocation":         e.KeywordLocation,
			"absoluteKeywordLocation": e.AbsoluteKeywordLocation,
		},
	}
}

func invalid(e FieldError) Report {
	return Report{Errors: []FieldError{e}}
}

// Func adapts a function to Validator.
type Func func(obj cube.Object) Report

// Validate implements Validator.
func (f Func) Validate(obj cube.Object) Report { return f(obj) }

// AcceptAll is a Validator that never reports errors.
var AcceptAll = Func(func(cube.Object) Report { return Report{Valid: true} })
