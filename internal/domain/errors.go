package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindConflict       ErrKind = "conflict"       // 400 (observed contract, not 409)
	KindUnauthorized   ErrKind = "unauthorized"   // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 500
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "Invalid request body", cause)
}

func ErrAllFieldsRequired() *Error {
	return New(KindValidation, "missing_fields", "All fields are required")
}

func ErrEmailRequired() *Error {
	return New(KindValidation, "missing_email", "Email is required")
}

// IMPORTANT: identical message for "no such user" and "wrong password"
// to avoid user enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindValidation, "invalid_credentials", "Invalid credentials")
}

// Verify-email failure: token valid in shape but subject does not resolve,
// or token rejected.
func ErrInvalidToken() *Error {
	return New(KindValidation, "invalid_token", "Invalid token")
}

// Reset-password failure: collapses malformed / expired / forged tokens.
func ErrInvalidOrExpiredToken() *Error {
	return New(KindValidation, "invalid_or_expired_token", "Invalid or expired token")
}

// ----------------------
// Conflict (400)
// ----------------------

func ErrEmailTaken() *Error {
	return New(KindConflict, "email_taken", "Email already registered")
}

// ----------------------
// Auth (401 / 403)
// ----------------------

func ErrUnauthorized() *Error {
	return New(KindUnauthorized, "unauthorized", "Unauthorized")
}

func ErrForbidden() *Error {
	return New(KindForbidden, "forbidden", "Forbidden")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not found")
}

// ----------------------
// Token classification (internal only)
// ----------------------
// These are never written to a client directly; the auth flows collapse
// them into ErrInvalidToken / ErrInvalidOrExpiredToken / ErrForbidden.
// Kept distinct so logs and tests can tell expiry from forgery.

func ErrTokenMalformed(cause error) *Error {
	return Wrap(KindUnauthorized, "token_malformed", "Invalid token", cause)
}

func ErrTokenSignatureInvalid(cause error) *Error {
	return Wrap(KindUnauthorized, "token_signature_invalid", "Invalid token", cause)
}

func ErrTokenExpired(cause error) *Error {
	return Wrap(KindUnauthorized, "token_expired", "Invalid token", cause)
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited(msg string) *Error {
	if msg == "" {
		msg = "Too many requests, please try again later."
	}
	return New(KindRateLimited, "rate_limited", msg)
}

// ----------------------
// Infrastructure / internal (500)
// ----------------------

func ErrStoreUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "store_unavailable", "Server error", cause)
}

func ErrMailSendFailed(cause error) *Error {
	return Wrap(KindInfrastructure, "mail_send_failed", "Email could not be sent", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Server error", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "Server error", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Server error", cause)
}
