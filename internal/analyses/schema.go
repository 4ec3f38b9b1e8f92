package analyses

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"resume-insights/resume/model"
)

//go:embed schemas/resume_document.json
var resumeDocumentSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

// FieldError describes one schema violation.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ValidationError carries every violation found in a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field error(s)", ErrInvalidDocument, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDocument
}

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeDocumentSchema))
	})
	return compiledSchema, schemaErr
}

// DecodeDocument validates body against the ResumeDocument schema and decodes it.
func DecodeDocument(body []byte) (model.ResumeDocument, error) {
	var doc model.ResumeDocument
	if !json.Valid(body) {
		return doc, &ValidationError{Fields: []FieldError{{Field: "(root)", Issue: "body is not valid JSON"}}}
	}

	schema, err := loadSchema()
	if err != nil {
		return doc, fmt.Errorf("load resume schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return doc, fmt.Errorf("validate resume: %w", err)
	}
	if !result.Valid() {
		fields := make([]FieldError, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			fields = append(fields, FieldError{Field: e.Field(), Issue: e.Description()})
		}
		sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		return doc, &ValidationError{Fields: fields}
	}

	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, &ValidationError{Fields: []FieldError{{Field: "(root)", Issue: err.Error()}}}
	}
	return doc, nil
}
