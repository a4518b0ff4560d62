package harness

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// schemaSource describes a scenario document. Definitions are closed, so
// unknown fields are rejected.
const schemaSource = `
#Tick: (int & >=0 & <=4294967295) | (string & =~"^tick:[0-9A-Fa-f]{8}$")

#Delta: int & >=0 & <=4294967295

#Step: {
	op:     "advance" | "rewind" | "add" | "sub" | "diff" | "compare" | "show"
	tick?:  #Tick
	other?: #Tick
	delta?: #Delta
	expect?: {
		result?: string
		fatal?:  "overflow" | "underflow"
	}
}

#Scenario: {
	name:        string & !=""
	description: string & !=""
	token?:      string & !=""
	start?:      #Tick
	steps: [#Step, ...#Step]
}
`

// Issue is a single schema violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError reports every schema violation in a scenario document.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		if issue.Path == "" {
			parts[i] = issue.Message
			continue
		}
		parts[i] = issue.Path + ": " + issue.Message
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// ValidateDocument checks scenario YAML against the scenario schema without
// decoding it into a Scenario.
func ValidateDocument(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return &ValidationError{Issues: []Issue{{Message: "document is empty"}}}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling scenario schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) *ValidationError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Issues: []Issue{{Message: err.Error()}}}
	}

	issues := make([]Issue, 0, len(errs))
	for _, e := range errs {
		format, args := e.Msg()
		issues = append(issues, Issue{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return &ValidationError{Issues: issues}
}
