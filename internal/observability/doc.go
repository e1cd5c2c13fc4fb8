// Package observability provides logging and metrics support for the
// business review service.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Prometheus metrics for HTTP traffic, businesses, and reviews
//   - Context helpers for propagating request identifiers
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Str("request_id", reqID).Msg("request completed")
//
// # Metrics
//
// Initialize and record metrics:
//
//	metrics := observability.NewMetrics("bizreview")
//	metrics.RecordHTTPRequest("GET", "/businesses/{id}", "200", 0.012)
//	metrics.RecordBusinessCreated()
//	metrics.RecordReviewConflict()
//
// # Context Helpers
//
// Store and retrieve the request identifier:
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	reqID := observability.RequestIDFromContext(ctx)
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
