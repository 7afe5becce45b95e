// Package middleware provides the built-in [client.Middleware] implementations.
//
//   - [NewTimeoutMiddleware] bounds each provider call with a deadline.
//   - [NewRetryMiddleware] retries transient failures (HTTP 429 and 5xx) with
//     exponential backoff and jitter.
//   - [NewLoggingMiddleware] writes slog records around every call.
//
// Middlewares run outermost-first. The grader binary wires them as
//
//	c, err := client.New(provider,
//	    client.WithObserver(observer),
//	    client.WithMiddleware(
//	        middleware.NewRetryMiddleware(middleware.RetryConfig{MaxRetries: 2}),
//	        middleware.NewTimeoutMiddleware(60*time.Second),
//	        middleware.NewLoggingMiddleware(logger, middleware.LogLevelStandard),
//	    ),
//	)
//
// so a request travels Observability → Retry → Timeout → Logging → Provider,
// and each retry attempt gets its own deadline.
package middleware
