package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError describes why a payload was rejected by the study set schema.
// Field is the JSON path of the offending value (e.g. "quiz[2].options") and
// may be empty when the payload as a whole is wrong.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// studySetRecord mirrors the wire shape with the constraints expressed as
// validator tags. Pointer fields distinguish "absent" from zero values.
type studySetRecord struct {
	Flashcards []flashcardRecord `json:"flashcards" validate:"required,min=1,dive"`
	Quiz       []quizRecord      `json:"quiz"       validate:"required,min=1,dive"`
}

type flashcardRecord struct {
	Question string `json:"question" validate:"required,notblank"`
	Answer   string `json:"answer"   validate:"required,notblank"`
}

type quizRecord struct {
	Question      string   `json:"question"      validate:"required,notblank"`
	Options       []string `json:"options"       validate:"required,len=4,dive,required,notblank"`
	CorrectAnswer *int     `json:"correctAnswer" validate:"required,min=0,max=3"`
	Explanation   *string  `json:"explanation"   validate:"required"`
}

var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateJSON decodes data and validates it against the study set schema.
// The payload is accepted or rejected as a whole: on any violation no part of
// it is returned.
//
// Input that is not JSON at all yields an error wrapping ErrMalformedJSON;
// JSON of the wrong shape yields a *ValidationError.
func ValidateJSON(data []byte) (*StudySet, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrMalformedJSON)
	}

	var record studySetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, decodeErrorToValidation(err)
	}

	if err := schemaValidator.Struct(record); err != nil {
		return nil, fieldErrorToValidation(err)
	}

	return record.toStudySet(), nil
}

// Validate checks an already decoded value (for example the result of
// json.Unmarshal into an any) against the study set schema. Strings, byte
// slices and json.RawMessage are treated as encoded JSON.
func Validate(raw any) (*StudySet, error) {
	switch v := raw.(type) {
	case nil:
		return nil, &ValidationError{Reason: "payload must be a JSON object"}
	case string:
		return ValidateJSON([]byte(v))
	case []byte:
		return ValidateJSON(v)
	case json.RawMessage:
		return ValidateJSON(v)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return ValidateJSON(data)
}

func (r studySetRecord) toStudySet() *StudySet {
	set := &StudySet{
		Flashcards: make([]Flashcard, 0, len(r.Flashcards)),
		Quiz:       make([]QuizQuestion, 0, len(r.Quiz)),
	}
	for _, card := range r.Flashcards {
		set.Flashcards = append(set.Flashcards, Flashcard{
			Question: card.Question,
			Answer:   card.Answer,
		})
	}
	for _, q := range r.Quiz {
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		set.Quiz = append(set.Quiz, QuizQuestion{
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: *q.CorrectAnswer,
			Explanation:   *q.Explanation,
		})
	}
	return set
}

// decodeErrorToValidation converts a typed decoding failure (valid JSON of
// the wrong shape) into a ValidationError.
func decodeErrorToValidation(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ValidationError{Reason: "payload must be a JSON object"}
		}
		return &ValidationError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("has the wrong type (got %s, want %s)", typeErr.Value, jsonKind(typeErr.Type)),
		}
	}
	return &ValidationError{Reason: "payload could not be decoded: " + err.Error()}
}

// fieldErrorToValidation turns the first validator failure into a readable
// ValidationError.
func fieldErrorToValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}

	fe := fieldErrs[0]
	path := fe.Namespace()
	// Drop the root struct name.
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}

	return &ValidationError{Field: path, Reason: reasonFor(fe)}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Kind() {
		case reflect.String:
			return "must be a non-empty string"
		case reflect.Slice:
			return "must be an array"
		default:
			return "is required"
		}
	case "notblank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must not be empty"
		}
		return fmt.Sprintf("must be an index between 0 and %d", OptionCount-1)
	case "max":
		return fmt.Sprintf("must be an index between 0 and %d", OptionCount-1)
	case "len":
		return fmt.Sprintf("must contain exactly %d entries", OptionCount)
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	default:
		return t.Kind().String()
	}
}
