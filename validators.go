package llmjudge

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Compile-time interface verification.
var (
	_ Validator = (*NotEmptyValidator)(nil)
	_ Validator = (*LengthValidator)(nil)
	_ Validator = (*JSONValidator)(nil)
	_ Validator = (*JSONSchemaValidator)(nil)
	_ Validator = (*ContainsValidator)(nil)
	_ Validator = (*RegexValidator)(nil)
	_ Validator = (*CustomValidator)(nil)
)

// NotEmptyValidator fails on empty or whitespace-only text.
type NotEmptyValidator struct{}

// NewNotEmpty creates a NotEmptyValidator.
func NewNotEmpty() *NotEmptyValidator {
	return &NotEmptyValidator{}
}

func (v *NotEmptyValidator) Name() string { return "not_empty" }

func (v *NotEmptyValidator) Validate(c *Candidate) error {
	if strings.TrimSpace(c.Text) == "" {
		return errors.New("response is empty or contains only whitespace")
	}
	return nil
}

// LengthValidator bounds the character length of the text. Either bound may
// be left at zero to disable it.
type LengthValidator struct {
	min int
	max int
}

// NewLength creates a LengthValidator. A positive max below min is a
// configuration error.
func NewLength(min, max int) (*LengthValidator, error) {
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("llmjudge: length bounds must be non-negative, got min=%d max=%d", min, max)
	}
	if max > 0 && min > max {
		return nil, fmt.Errorf("llmjudge: min length %d exceeds max length %d", min, max)
	}
	return &LengthValidator{min: min, max: max}, nil
}

func (v *LengthValidator) Name() string { return "length" }

func (v *LengthValidator) Validate(c *Candidate) error {
	n := utf8.RuneCountInString(c.Text)
	if v.min > 0 && n < v.min {
		return fmt.Errorf("response length %d is below minimum %d", n, v.min)
	}
	if v.max > 0 && n > v.max {
		return fmt.Errorf("response length %d exceeds maximum %d", n, v.max)
	}
	return nil
}

// JSONValidator fails when the text does not parse as a single JSON value.
// The parsed value is cached on the candidate for downstream rules.
type JSONValidator struct{}

// NewJSON creates a JSONValidator.
func NewJSON() *JSONValidator {
	return &JSONValidator{}
}

func (v *JSONValidator) Name() string { return "json" }

func (v *JSONValidator) Validate(c *Candidate) error {
	if _, err := c.JSON(); err != nil {
		return fmt.Errorf("response is not valid JSON: %v", err)
	}
	return nil
}

// JSONType names an expected JSON value type for schema validation.
type JSONType string

// JSON value types.
const (
	TypeString  JSONType = "string"
	TypeNumber  JSONType = "number"
	TypeInteger JSONType = "integer"
	TypeBoolean JSONType = "boolean"
	TypeArray   JSONType = "array"
	TypeObject  JSONType = "object"
	TypeNull    JSONType = "null"
)

// JSONSchemaValidator checks that the text parses to a JSON object carrying
// all required keys, with each declared key holding a value of the expected
// type. It reuses the candidate's cached parse when a JSONValidator ran
// earlier in the chain, and parses the text itself otherwise.
type JSONSchemaValidator struct {
	required []string
	types    map[string]JSONType
}

// NewJSONSchema creates a JSONSchemaValidator. Keys listed in types but not
// in required are only type-checked when present.
func NewJSONSchema(required []string, types map[string]JSONType) *JSONSchemaValidator {
	return &JSONSchemaValidator{required: required, types: types}
}

func (v *JSONSchemaValidator) Name() string { return "json_schema" }

func (v *JSONSchemaValidator) Validate(c *Candidate) error {
	val, err := c.JSON()
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %v", err)
	}

	obj, ok := val.(map[string]any)
	if !ok {
		return errors.New("JSON value is not an object")
	}

	var problems []string
	for _, key := range v.required {
		if _, ok := obj[key]; !ok {
			problems = append(problems, fmt.Sprintf("missing required key %q", key))
		}
	}
	// Sorted for deterministic error ordering across runs.
	keys := make([]string, 0, len(v.types))
	for key := range v.types {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fieldVal, ok := obj[key]
		if !ok {
			continue
		}
		want := v.types[key]
		if got := jsonTypeOf(fieldVal); !jsonTypeMatches(want, fieldVal) {
			problems = append(problems, fmt.Sprintf("key %q expected %s, got %s", key, want, got))
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// jsonTypeOf names the JSON type of a decoded value.
func jsonTypeOf(v any) JSONType {
	switch v.(type) {
	case string:
		return TypeString
	case float64:
		return TypeNumber
	case bool:
		return TypeBoolean
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	case nil:
		return TypeNull
	default:
		return JSONType(fmt.Sprintf("%T", v))
	}
}

// jsonTypeMatches reports whether a decoded value satisfies the expected
// type. Integers are numbers without a fractional part, since encoding/json
// decodes all numbers as float64.
func jsonTypeMatches(want JSONType, v any) bool {
	if want == TypeInteger {
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	}
	return jsonTypeOf(v) == want
}

// ContainsValidator checks the text for a set of keywords, requiring either
// all of them or at least one depending on policy.
type ContainsValidator struct {
	keywords      []string
	caseSensitive bool
	allRequired   bool
}

// NewContains creates a ContainsValidator. An empty keyword set is a
// configuration error.
func NewContains(keywords []string, caseSensitive, allRequired bool) (*ContainsValidator, error) {
	if len(keywords) == 0 {
		return nil, errors.New("llmjudge: contains validator requires at least one keyword")
	}
	return &ContainsValidator{
		keywords:      keywords,
		caseSensitive: caseSensitive,
		allRequired:   allRequired,
	}, nil
}

func (v *ContainsValidator) Name() string { return "contains" }

func (v *ContainsValidator) Validate(c *Candidate) error {
	text := c.Text
	if !v.caseSensitive {
		text = strings.ToLower(text)
	}

	var missing []string
	for _, kw := range v.keywords {
		needle := kw
		if !v.caseSensitive {
			needle = strings.ToLower(kw)
		}
		if !strings.Contains(text, needle) {
			missing = append(missing, kw)
		}
	}

	if v.allRequired {
		if len(missing) > 0 {
			return fmt.Errorf("response is missing required keywords: %s", strings.Join(missing, ", "))
		}
		return nil
	}

	if len(missing) == len(v.keywords) {
		return fmt.Errorf("response does not contain any of the keywords: %s", strings.Join(v.keywords, ", "))
	}
	return nil
}

// RegexValidator checks the text against a pattern. It fails closed: a
// pattern that does not compile is reported as a validation failure rather
// than aborting the chain or the constructor.
type RegexValidator struct {
	pattern    string
	re         *regexp.Regexp
	compileErr error
}

// NewRegex creates a RegexValidator. Match flags use Go's inline syntax,
// e.g. "(?i)" for case-insensitive matching.
func NewRegex(pattern string) *RegexValidator {
	re, err := regexp.Compile(pattern)
	return &RegexValidator{pattern: pattern, re: re, compileErr: err}
}

func (v *RegexValidator) Name() string { return "regex" }

func (v *RegexValidator) Validate(c *Candidate) error {
	if v.compileErr != nil {
		return fmt.Errorf("invalid pattern %q: %v", v.pattern, v.compileErr)
	}
	if !v.re.MatchString(c.Text) {
		return fmt.Errorf("response does not match pattern %q", v.pattern)
	}
	return nil
}

// CustomValidator wraps an externally supplied predicate. The predicate's
// boolean result is the rule's validity; its message, when non-empty,
// becomes the error text.
type CustomValidator struct {
	name string
	fn   func(text string) (bool, string)
}

// NewCustom creates a CustomValidator. A nil predicate is a configuration
// error.
func NewCustom(name string, fn func(text string) (bool, string)) (*CustomValidator, error) {
	if fn == nil {
		return nil, errors.New("llmjudge: custom validator requires a predicate")
	}
	if name == "" {
		name = "custom"
	}
	return &CustomValidator{name: name, fn: fn}, nil
}

func (v *CustomValidator) Name() string { return v.name }

func (v *CustomValidator) Validate(c *Candidate) error {
	ok, msg := v.fn(c.Text)
	if ok {
		return nil
	}
	if msg == "" {
		msg = fmt.Sprintf("%s validation failed", v.name)
	}
	return errors.New(msg)
}
