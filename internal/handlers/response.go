package handlers

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ensabun/internal/apperr"
	"ensabun/internal/middleware"
)

const hiddenDetail = "Something went wrong"

// Envelope is the body of every API response.
type Envelope struct {
	Success      bool        `json:"success"`
	Data         interface{} `json:"data,omitempty"`
	Count        *int        `json:"count,omitempty"`
	Message      string      `json:"message,omitempty"`
	Error        string      `json:"error,omitempty"`
	AffectedRows *int64      `json:"affectedRows,omitempty"`
	InsertID     *int64      `json:"insertId,omitempty"`
}

// lowStockEnvelope always carries threshold, null when the request's
// threshold has no integer prefix.
type lowStockEnvelope struct {
	Envelope
	Threshold *int64 `json:"threshold"`
}

// Responder renders results and errors as envelopes. Store error details
// reach the client only when Verbose is set.
type Responder struct {
	Log     logrus.FieldLogger
	Verbose bool
}

func list[T any](c *fiber.Ctx, rows []T) error {
	count := len(rows)
	return c.JSON(Envelope{Success: true, Data: rows, Count: &count})
}

func item(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func affected(c *fiber.Ctx, message string, rows int64) error {
	return c.JSON(Envelope{Success: true, Message: message, AffectedRows: &rows})
}

// Fail maps err to its status and writes the failure envelope.
func (r Responder) Fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Store("Internal server error", err)
	}

	env := Envelope{Success: false, Message: appErr.Message}
	if kind == apperr.KindStore {
		r.Log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": c.Locals(middleware.RequestIDKey),
		}).Error(appErr.Message)

		env.Error = hiddenDetail
		if r.Verbose && appErr.Err != nil {
			env.Error = appErr.Err.Error()
		}
	}
	return c.Status(kind.HTTPStatus()).JSON(env)
}

// parseBody decodes a JSON body into dst. An empty body leaves every field
// absent.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}

// resourceID parses an :id path segment. A non-integer id cannot match any
// row, so it is reported with the resource's not-found message.
func resourceID(c *fiber.Ctx, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperr.NotFound(notFound)
	}
	return id, nil
}

// intParam parses a path segment that must be an integer.
func intParam(c *fiber.Ctx, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperr.Validation(name + " must be an integer")
	}
	return v, nil
}

// leadingInt parses the integer prefix of s after leading whitespace, so
// "7abc" gives 7 and "5.5" gives 5. It returns nil when no digit follows
// the optional sign.
func leadingInt(s string) *int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
