// Package web is the small framework the handlers are built on. It wraps a
// gin engine so that application handlers can return errors and share a
// request context, while the router keeps gin's method helpers for raw
// handlers (SSE, file serving).
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every application handler implements.
type Handler func(c *Context) error

// Middleware runs some code before and/or after a Handler.
type Middleware func(Handler) Handler

// App is the entrypoint for the web application.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{gin.Default()}
}

func (a *App) handle(method string, path string, handler Handler, middlewares ...Middleware) {
	// Wrap the handler with its middleware chain, innermost last.
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			handler = middlewares[i](handler)
		}
	}

	a.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)

		if err := handler(ctx); err != nil {
			// Handlers respond to the client themselves; an error escaping
			// here means nothing was written.
			log.Println("web: unhandled error:", err)
			_ = ctx.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
