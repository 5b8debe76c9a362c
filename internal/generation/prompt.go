package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// Requested cardinalities. These are asked of the model, not enforced: the
// schema accepts any non-empty counts.
const (
	RequestedMinFlashcards = 12
	RequestedMaxFlashcards = 15
	RequestedQuizQuestions = 10
)

// promptData represents the data passed to the prompt template
type promptData struct {
	SourceText    string
	MinFlashcards int
	MaxFlashcards int
	QuizQuestions int
}

// Prompt renders generation prompts from a parsed template.
type Prompt struct {
	tmpl *template.Template
}

// LoadPrompt parses the prompt template at path, or the built-in template
// when path is empty.
func LoadPrompt(path string) (*Prompt, error) {
	content := defaultPromptTemplate
	name := "study_set"

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				ErrInvalidConfig, path, err)
		}
		content = string(raw)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &Prompt{tmpl: tmpl}, nil
}

// Name returns the template name, used in logs.
func (p *Prompt) Name() string {
	return p.tmpl.Name()
}

// Render executes the template with sourceText.
func (p *Prompt) Render(sourceText string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", ErrEmptySourceText
	}

	data := promptData{
		SourceText:    sourceText,
		MinFlashcards: RequestedMinFlashcards,
		MaxFlashcards: RequestedMaxFlashcards,
		QuizQuestions: RequestedQuizQuestions,
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
