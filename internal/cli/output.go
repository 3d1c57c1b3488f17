package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/numerals/internal/numeral"
	"github.com/roach88/numerals/internal/registry"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Conversion rejected or scenarios failed
	ExitCommandError = 2 // Command error (unknown system, unparsable input, bad config, etc.)
)

// Error codes reported in CLIError.Code.
const (
	CodeTypeMismatch  = "E_TYPE_MISMATCH"
	CodeOutOfRange    = "E_OUT_OF_RANGE"
	CodeInvalidFormat = "E_INVALID_FORMAT"
	CodeUnknownSystem = "E_UNKNOWN_SYSTEM"
	CodeInvalidInput  = "E_INVALID_INPUT"
	CodeTestFailed    = "E_TEST_FAILED"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set when the command already wrote the error to its output.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already written by the command.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E_OUT_OF_RANGE", "E_UNKNOWN_SYSTEM", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Text output prints data with its String method when it has one.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err in the configured format and returns the ExitError
// the command should return.
func (f *OutputFormatter) Fail(err error) error {
	code, exit, details := classify(err)
	if werr := f.Error(code, err.Error(), details); werr != nil {
		return werr
	}
	return &ExitError{Code: exit, Message: code, Err: err, Reported: true}
}

// classify maps an error to its response code, exit code and details.
//
// Conversion errors exit with ExitFailure; anything that stops the
// command from attempting a conversion exits with ExitCommandError.
func classify(err error) (code string, exit int, details any) {
	var nerr *numeral.Error
	if errors.As(err, &nerr) {
		details = map[string]string{
			"kind":   string(nerr.Kind),
			"system": nerr.System,
			"input":  nerr.Input,
		}
		switch nerr.Kind {
		case numeral.TypeKind:
			return CodeTypeMismatch, ExitFailure, details
		case numeral.RangeKind:
			return CodeOutOfRange, ExitFailure, details
		case numeral.FormatKind:
			return CodeInvalidFormat, ExitFailure, details
		}
	}

	var notFound *registry.NotFoundError
	if errors.As(err, &notFound) {
		return CodeUnknownSystem, ExitCommandError, map[string]any{"known": notFound.Known}
	}
	return CodeInvalidInput, ExitCommandError, details
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
