package antispam

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// validate backs the syntax predicates (email, oneof). It is safe for
// concurrent use once built.
var validate = validator.New()

// Values carries the raw field values of one submission, keyed by field name.
// Text inputs are strings, checkboxes are bools; a missing key means the field
// was not sent at all.
type Values map[string]any

// String returns the cleaned string value of field (see Clean), or "" when the
// field is absent or not a string.
func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return Clean(s)
}

// Bool returns the boolean value of field, or false when absent.
func (v Values) Bool(field string) bool {
	b, _ := v[field].(bool)
	return b
}

// Clean trims surrounding whitespace and applies Unicode NFC normalization so
// lengths and stored values are independent of how the browser composed the
// characters.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// Result is the outcome of Schema.Validate. A Result without errors is valid.
type Result struct {
	Errors FieldErrors
}

// Valid reports whether no field failed.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Rule is a single predicate on a field value plus the message reported when
// it fails.
type Rule struct {
	Check   func(v any) bool
	Message string
}

// Field binds a field name to an ordered list of rules. The first failing
// rule determines the field's message.
type Field struct {
	Name     string
	Optional bool // skip the rules when the cleaned value is empty or absent
	Rules    []Rule
}

// Schema is a declarative set of field rules. It is evaluated per field,
// independently: every failing field is reported, not just the first.
type Schema struct {
	fields []Field
}

// NewSchema builds a Schema from fields.
func NewSchema(fields ...Field) Schema {
	return Schema{fields: fields}
}

// Fields returns the names of the fields covered by s, in declaration order.
func (s Schema) Fields() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.Name)
	}
	return out
}

// Validate evaluates every field of s against vals.
func (s Schema) Validate(vals Values) Result {
	res := Result{}
	for _, f := range s.fields {
		raw, present := vals[f.Name]
		if f.Optional && (!present || isBlank(raw)) {
			continue
		}
		for _, r := range f.Rules {
			if !r.Check(raw) {
				if res.Errors == nil {
					res.Errors = FieldErrors{}
				}
				res.Errors[f.Name] = r.Message
				break
			}
		}
	}
	return res
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return Clean(t) == ""
	}
	return false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return Clean(s), true
}

// MinLen fails unless v is a string whose cleaned rune length is at least n.
func MinLen(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(v any) bool {
		s, ok := asString(v)
		return ok && utf8.RuneCountInString(s) >= n
	}}
}

// MaxLen fails when v is a string whose cleaned rune length exceeds n.
// Non-strings pass; pair it with MinLen or Required to demand presence.
func MaxLen(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(v any) bool {
		s, ok := asString(v)
		return !ok || utf8.RuneCountInString(s) <= n
	}}
}

// Email fails unless v is a string with valid e-mail syntax.
func Email(msg string) Rule {
	return Rule{Message: msg, Check: func(v any) bool {
		s, ok := asString(v)
		return ok && validate.Var(s, "required,email") == nil
	}}
}

// OneOf fails unless v is one of allowed. Allowed values must not contain
// spaces.
func OneOf(msg string, allowed ...string) Rule {
	tag := "required,oneof=" + strings.Join(allowed, " ")
	return Rule{Message: msg, Check: func(v any) bool {
		s, ok := asString(v)
		return ok && validate.Var(s, tag) == nil
	}}
}

// IsTrue fails unless v is the boolean true.
func IsTrue(msg string) Rule {
	return Rule{Message: msg, Check: func(v any) bool {
		b, ok := v.(bool)
		return ok && b
	}}
}
