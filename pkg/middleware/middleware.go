// Package middleware provides HTTP middleware and a composition chain.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware in registration order: the first Use'd
// middleware is the outermost wrapper.
type Chain struct {
	stack []Middleware
}

// New creates an empty middleware chain.
func New() *Chain {
	return &Chain{}
}

// Use appends a middleware to the chain.
func (c *Chain) Use(m Middleware) *Chain {
	c.stack = append(c.stack, m)
	return c
}

// Wrap applies the chain to a handler.
func (c *Chain) Wrap(h http.Handler) http.Handler {
	for i := len(c.stack) - 1; i >= 0; i-- {
		h = c.stack[i](h)
	}
	return h
}
