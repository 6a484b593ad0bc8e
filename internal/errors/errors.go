package errors

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/true1853/Nykha-bot/internal/logger"
)

var (
	// ErrInvalidCategory is returned when a category is outside the fixed set. No write happens.
	ErrInvalidCategory = stderrors.New("invalid activity category")
	// ErrNotFound is returned when a user, entry or mantra does not exist.
	// Callers treat it as "no data yet".
	ErrNotFound = stderrors.New("not found")
	// ErrStoreUnavailable wraps any failure to reach or write the backing store.
	ErrStoreUnavailable = stderrors.New("store unavailable")
	// ErrInvalidLocation is returned for out-of-range coordinates or an unknown timezone.
	ErrInvalidLocation = stderrors.New("invalid location")
	// ErrEmptyEntry is returned when a diary entry has no text.
	ErrEmptyEntry = stderrors.New("diary entry is empty")
)

// StoreError classifies a store failure for op. sql.ErrNoRows becomes ErrNotFound,
// everything else is wrapped as ErrStoreUnavailable. The original error stays in the chain.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, ErrNotFound) || stderrors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// UserMessage renders err for an end user. Store failures get a generic retry-later text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrStoreUnavailable):
		return "Something went wrong on our side, please try again later 🙏"
	case stderrors.Is(err, ErrNotFound):
		return "No data yet."
	default:
		return Format(err)
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
