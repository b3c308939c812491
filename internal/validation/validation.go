// Package validation implements declarative per-route request
// validation. Each route declares an ordered list of rules over its
// path parameters and JSON body; the middleware evaluates every rule,
// collects one error entry per failed rule, and rejects the request
// with 400 before the handler runs.
package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Location identifies where a validated field comes from.
type Location string

const (
	// InBody selects a field of the JSON request body.
	InBody Location = "body"
	// InParams selects a path parameter.
	InParams Location = "params"
)

// FieldError is a single failed rule as reported to the client.
type FieldError struct {
	Msg      string   `json:"msg"`
	Field    string   `json:"field"`
	Location Location `json:"location"`
}

// Constraint checks one raw field value. present reports whether the
// field existed in the request at all; constraints fail on absent
// values unless documented otherwise.
type Constraint func(value interface{}, present bool) bool

// Rule binds one constraint to one request field.
type Rule struct {
	Field    string
	Location Location
	Check    Constraint
	Message  string
}

const bodyLocalsKey = "validation_body"

// New builds a Fiber middleware that evaluates rules in order. Every
// rule is evaluated even after a failure, so a field with several
// rules contributes one entry per independently violated rule. On
// success the parsed body is stored in the request context for the
// handler to pick up via Body.
func New(rules ...Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]interface{}
		if raw := c.Body(); len(raw) > 0 {
			// A malformed body is treated as an empty one; the rules
			// then report each missing field individually.
			_ = json.Unmarshal(raw, &body)
		}

		var errs []FieldError
		for _, r := range rules {
			var value interface{}
			var present bool
			switch r.Location {
			case InParams:
				s := c.Params(r.Field)
				value, present = s, s != ""
			case InBody:
				value, present = body[r.Field]
			}
			if !r.Check(value, present) {
				errs = append(errs, FieldError{
					Msg:      r.Message,
					Field:    r.Field,
					Location: r.Location,
				})
			}
		}
		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errs,
			})
		}

		c.Locals(bodyLocalsKey, body)
		return c.Next()
	}
}

// Body returns the JSON body parsed by the validation middleware, or
// nil when the middleware did not run or the body was empty.
func Body(c *fiber.Ctx) map[string]interface{} {
	body, _ := c.Locals(bodyLocalsKey).(map[string]interface{})
	return body
}

// IsInt accepts a value that parses as a base-10 integer. Path
// parameters arrive as strings, so this is the id-format check.
func IsInt(value interface{}, present bool) bool {
	if !present {
		return false
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// NotEmpty accepts a string with at least one non-space character.
func NotEmpty(value interface{}, present bool) bool {
	if !present {
		return false
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

// Present accepts any non-null value.
func Present(value interface{}, present bool) bool {
	return present && value != nil
}

// IsNumeric accepts a JSON number. Strings are rejected even when they
// look numeric: the body is narrowed to typed fields downstream and a
// price must arrive as a number, not as text.
func IsNumeric(value interface{}, present bool) bool {
	if !present {
		return false
	}
	_, ok := value.(float64)
	return ok
}

// IsBool accepts a JSON boolean.
func IsBool(value interface{}, present bool) bool {
	if !present {
		return false
	}
	_, ok := value.(bool)
	return ok
}

// GreaterThan builds a constraint that requires a JSON number strictly
// above min.
func GreaterThan(min float64) Constraint {
	return func(value interface{}, present bool) bool {
		if !present {
			return false
		}
		f, ok := value.(float64)
		return ok && f > min
	}
}
