package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carrental/internal/response"
	"carrental/internal/validation"
)

// timeLayouts are tried in order; values without an offset are taken as UTC.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("Invalid value for path parameter '%s'", name))
		return 0, false
	}
	return id, true
}

// query collects typed optional query parameters, recording malformed ones.
type query struct {
	c    *gin.Context
	errs validation.Errors
}

func newQuery(c *gin.Context) *query {
	return &query{c: c, errs: validation.Errors{}}
}

func (q *query) optInt64(name string) *int64 {
	raw, ok := q.c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.errs.Add(name, fmt.Sprintf("The parameter '%s' must be an integer.", name))
		return nil
	}
	return &v
}

// optInt is bounded to 32 bits, the width of INTEGER columns.
func (q *query) optInt(name string) *int {
	raw, ok := q.c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		q.errs.Add(name, fmt.Sprintf("The parameter '%s' must be a 32-bit integer.", name))
		return nil
	}
	n := int(v)
	return &n
}

func (q *query) optDecimal(name string) *decimal.Decimal {
	raw, ok := q.c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		q.errs.Add(name, fmt.Sprintf("The parameter '%s' must be a decimal number.", name))
		return nil
	}
	return &d
}

func (q *query) optTime(name string) *time.Time {
	raw, ok := q.c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	t, err := parseTime(raw)
	if err != nil {
		q.errs.Add(name, fmt.Sprintf("The parameter '%s' must be an ISO-8601 date-time.", name))
		return nil
	}
	return &t
}

func (q *query) optString(name string) string {
	return strings.TrimSpace(q.c.Query(name))
}

// ok answers 400 with the collected failures when any parameter was malformed.
func (q *query) ok() bool {
	if q.errs.Empty() {
		return true
	}
	response.Validation(q.c, q.errs)
	return false
}

// timeField parses an optional date-time body field.
func timeField(errs validation.Errors, field string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := parseTime(*raw)
	if err != nil {
		errs.Add(field, fmt.Sprintf("The field '%s' must be an ISO-8601 date-time.", field))
		return nil
	}
	return &t
}

// requiredTime parses a mandatory date-time body field.
func requiredTime(errs validation.Errors, field string, raw *string) time.Time {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		errs.Add(field, validation.Message(field, "required", ""))
		return time.Time{}
	}
	if t := timeField(errs, field, raw); t != nil {
		return *t
	}
	return time.Time{}
}
