package web

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestError(t *testing.T) {
	err := NewRequestError(errors.New("bad input"), http.StatusBadRequest)

	var webErr *Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
	assert.Equal(t, "bad input", webErr.Error())
}

func TestNewRequestErrorWrapped(t *testing.T) {
	inner := errors.New("row missing")
	err := NewRequestError(errors.Wrap(inner, "selecting punch"), http.StatusNotFound)

	var webErr *Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusNotFound, webErr.Status)
	assert.True(t, errors.Is(webErr.Err, inner))
}

func TestIsRequestError(t *testing.T) {
	webErr, ok := IsRequestError(NewRequestError(errors.New("x"), http.StatusConflict))
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, webErr.Status)

	_, ok = IsRequestError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = IsRequestError(nil)
	assert.False(t, ok)
}
