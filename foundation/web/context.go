package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries one request through the application. Ctx is the request
// context handlers and repositories must pass down; auth claims are attached
// to it by the middleware.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrs []error
	paramErrs []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// Respond converts a Go value to JSON and sends it to the client.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError sends an error response to the client. Expected errors carry
// their own status via NewRequestError; anything else is a 500.
func (c *Context) RespondError(err error) error {
	if webErr, ok := IsRequestError(err); ok {
		c.JSON(webErr.Status, map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		})
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})
	return nil
}

// BindFunc binds the request body into data and checks that the named struct
// fields were actually provided. Field names may be passed comma separated.
func (c *Context) BindFunc(data interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	for _, fields := range requiredFields {
		for _, name := range strings.Split(fields, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			field := v.FieldByName(name)
			if !field.IsValid() || field.IsZero() {
				return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
			}
		}
	}

	return nil
}

// GetQueryFunc reads an optional query parameter as the given kind. It
// returns a typed nil pointer when the parameter is absent; parse failures
// are collected and surfaced by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok || value == "" {
			return (*int)(nil)
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s must be an integer", name))
			return nil
		}
		return &number
	case reflect.String:
		if !ok || value == "" {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok || value == "" {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s must be a boolean", name))
			return nil
		}
		return &b
	}

	c.queryErrs = append(c.queryErrs, fmt.Errorf("query %s: unsupported kind %s", name, kind))
	return nil
}

// ValidQuery reports any parse error GetQueryFunc collected.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(c.queryErrs))
	for _, err := range c.queryErrs {
		msgs = append(msgs, err.Error())
	}
	return NewRequestError(errors.New(strings.Join(msgs, "; ")), http.StatusBadRequest)
}

// GetParam reads a path parameter as the given kind. Failures are collected
// and surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		number, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Errorf("param %s must be an integer", name))
			return 0
		}
		return number
	case reflect.String:
		return value
	}

	c.paramErrs = append(c.paramErrs, fmt.Errorf("param %s: unsupported kind %s", name, kind))
	return nil
}

// ValidParam reports any parse error GetParam collected.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(c.paramErrs))
	for _, err := range c.paramErrs {
		msgs = append(msgs, err.Error())
	}
	return NewRequestError(errors.New(strings.Join(msgs, "; ")), http.StatusBadRequest)
}
