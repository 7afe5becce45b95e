// Package client sits between an [ai.Provider] and the grading pipeline. A
// Client turns a rendered prompt into a single-message chat request, runs it
// through a middleware chain and returns the provider's reply.
//
// The entry point is [New], which accepts an [ai.Provider] and functional
// options such as [WithModel], [WithTemperature], [WithObserver] and
// [WithMiddleware]. A Client is immutable after construction and keeps no
// conversation history, so one value can serve any number of independent
// requests.
package client
