// Package web is a small application kit on top of gin: handlers return errors,
// middleware wraps handlers, and every request gets a Context carrying the
// request scoped context.Context used by the layers below.
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles a request and reports a failure it could not respond to.
type Handler func(c *Context) error

// Middleware wraps a Handler with extra behaviour.
type Middleware func(Handler) Handler

// App is the entrypoint into the HTTP side of the application.
type App struct {
	*gin.Engine
	mw []Middleware
}

// NewApp creates an App backed by a gin engine. The given middleware runs for
// every handler registered through Handle and its shortcuts.
func NewApp(engine *gin.Engine, mw ...Middleware) *App {
	if engine == nil {
		engine = gin.New()
	}

	return &App{
		Engine: engine,
		mw:     mw,
	}
}

// Handle registers handler for method and path. Route middleware runs inside
// the application wide middleware.
func (a *App) Handle(method, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)
	handler = wrapMiddleware(a.mw, handler)

	a.Engine.Handle(method, path, func(gc *gin.Context) {
		c := NewContext(gc)

		if err := handler(c); err != nil {
			log.Printf("%s %s : unhandled error: %v", method, path, err)
			if !gc.Writer.Written() {
				_ = c.RespondError(err)
			}
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodGet, path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPost, path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPut, path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPatch, path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodDelete, path, handler, mw...)
}

// wrapMiddleware builds the chain so the first middleware in the slice is the
// first one executed.
func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if h := mw[i]; h != nil {
			handler = h(handler)
		}
	}

	return handler
}
