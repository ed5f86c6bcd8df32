package web

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) *Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ginCtx.Request = httptest.NewRequest("GET", target, nil)
	return NewContext(ginCtx)
}

func TestGetQueryFuncPresent(t *testing.T) {
	c := newTestContext(t, "/?limit=5&mechanic_name=Marco&paid=true")

	limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	require.True(t, ok)
	require.NotNil(t, limit)
	assert.Equal(t, 5, *limit)

	name, ok := c.GetQueryFunc(reflect.String, "mechanic_name").(*string)
	require.True(t, ok)
	require.NotNil(t, name)
	assert.Equal(t, "Marco", *name)

	paid, ok := c.GetQueryFunc(reflect.Bool, "paid").(*bool)
	require.True(t, ok)
	require.NotNil(t, paid)
	assert.True(t, *paid)

	assert.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncAbsent(t *testing.T) {
	c := newTestContext(t, "/")

	limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	require.True(t, ok)
	assert.Nil(t, limit)

	name, ok := c.GetQueryFunc(reflect.String, "mechanic_name").(*string)
	require.True(t, ok)
	assert.Nil(t, name)

	assert.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncInvalid(t *testing.T) {
	c := newTestContext(t, "/?limit=abc")

	_, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	assert.False(t, ok)

	err := c.ValidQuery()
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, 400, webErr.Status)
}

func TestGetParam(t *testing.T) {
	c := newTestContext(t, "/")
	c.Params = gin.Params{{Key: "id", Value: "12"}, {Key: "mechanic", Value: "Luis"}}

	assert.Equal(t, 12, c.GetParam(reflect.Int, "id").(int))
	assert.Equal(t, "Luis", c.GetParam(reflect.String, "mechanic").(string))
	assert.NoError(t, c.ValidParam())
}

func TestGetParamInvalid(t *testing.T) {
	c := newTestContext(t, "/")
	c.Params = gin.Params{{Key: "id", Value: "twelve"}}

	assert.Equal(t, 0, c.GetParam(reflect.Int, "id").(int))
	require.Error(t, c.ValidParam())
}
