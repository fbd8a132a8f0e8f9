// Package middleware provides HTTP middleware for the shell engine.
//
// Middleware stack:
//   - CORS: cross-origin resource sharing so the browser renderer can
//     talk to the engine from a different origin during development
//   - GlobalRateLimit: engine-wide token bucket, applied first
//   - RateLimit: per-client token bucket, one per renderer IP
//
// Example usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.GlobalRateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
