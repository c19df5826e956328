package llmjudge

import (
	"encoding/json"
	"fmt"
)

// Validator checks a candidate text against a single rule. A nil return
// means the rule passed; a non-nil error is the validation failure message.
type Validator interface {
	// Name identifies the rule in error attribution.
	Name() string
	// Validate checks the candidate and returns nil on success.
	Validate(c *Candidate) error
}

// Candidate is a text under validation. It caches the parsed JSON value so
// a chain containing both the JSON rule and the JSON schema rule parses the
// text only once, regardless of which rule runs first.
type Candidate struct {
	Text string

	parsed    any
	parseErr  error
	parseDone bool
}

// NewCandidate wraps text for validation.
func NewCandidate(text string) *Candidate {
	return &Candidate{Text: text}
}

// JSON returns the text parsed as a single JSON value, parsing on first use.
func (c *Candidate) JSON() (any, error) {
	if !c.parseDone {
		c.parseDone = true
		c.parseErr = json.Unmarshal([]byte(c.Text), &c.parsed)
	}
	return c.parsed, c.parseErr
}

// Report aggregates the results of running a candidate through a chain.
// Valid is the AND of every rule's result; Errors holds one message per
// failing rule, in rule order.
type Report struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// Chain is an ordered sequence of validators evaluated as a unit.
type Chain struct {
	validators []Validator
}

// NewChain creates a Chain from validators, evaluated in the given order.
func NewChain(validators ...Validator) *Chain {
	return &Chain{validators: validators}
}

// Validate runs every validator against the text and aggregates the results.
// It never short-circuits: a single pass surfaces all violations. A rule
// that panics internally is recorded as a failure attributed to that rule
// and the remaining rules still run.
func (ch *Chain) Validate(text string) Report {
	c := NewCandidate(text)
	report := Report{Valid: true}

	for _, v := range ch.validators {
		if err := runValidator(v, c); err != nil {
			report.Valid = false
			report.Errors = append(report.Errors, err.Error())
		}
	}

	return report
}

// runValidator evaluates one rule, converting a panic into a rule failure
// so a misbehaving rule cannot abort the chain.
func runValidator(v Validator, c *Candidate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: validator panicked: %v", v.Name(), r)
		}
	}()
	return v.Validate(c)
}
