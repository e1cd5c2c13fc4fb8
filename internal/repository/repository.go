// Package repository provides data access interfaces and implementations
// for the business review service.
//
// # Overview
//
// This package defines repository interfaces and their PostgreSQL implementations
// following the repository pattern to abstract data persistence from the HTTP layer.
//
// # Repository Interfaces
//
//   - BusinessRepository: Manages business records
//   - ReviewRepository: Manages review records and the one-review-per-user rule
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple goroutines.
// The underlying pgxpool handles connection pooling and synchronization.
//
// # Error Handling
//
// All methods return domain-specific errors from the domain package.
// Database errors are wrapped with context using fmt.Errorf with the %w verb.
// Common errors include:
//
//   - domain.ErrNotFound: Row does not exist (including a review insert whose
//     business_id references a missing business)
//   - domain.ErrInvalidInput: Invalid parameters provided
//
// # Usage Pattern
//
// Repositories are created at application startup and passed to the HTTP server:
//
//	db, _ := database.New(ctx, cfg, logger)
//	businessRepo := repository.NewPgBusinessRepository(db)
//	reviewRepo := repository.NewPgReviewRepository(db)
package repository

import (
	"github.com/placehub/business-review-service/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
// This allows repositories to work with both direct pool connections and transactions.
type DBTX = database.DBTX
