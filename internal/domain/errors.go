package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrTargetNotFound is returned when a deployment target name is unknown
	ErrTargetNotFound = errors.New("deployment target not found")

	// ErrDeployFailed is returned when the deployment helper fails
	ErrDeployFailed = errors.New("deployment failed")

	// ErrReceiptMissing is returned when a mined transaction has no receipt
	ErrReceiptMissing = errors.New("receipt not available for mined transaction")

	// ErrNotConnected is returned when a reader is used before Connect
	ErrNotConnected = errors.New("not connected to node")
)

// UsageError is returned when a command is invoked with missing arguments
type UsageError struct {
	Usage   string
	Message string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\nUsage: %s", e.Message, e.Usage)
}

// ConfigError is returned when required configuration is absent or invalid
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Key, e.Reason)
}

// UnknownTargetErr reports an unknown deployment target together with close matches
type UnknownTargetErr struct {
	Name        string
	Suggestions []string
}

func (e UnknownTargetErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown deployment target '%s'", e.Name)
	}
	return fmt.Sprintf("unknown deployment target '%s' - did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownTargetErr) Unwrap() error {
	return ErrTargetNotFound
}

// IsUsageError reports whether err is, or wraps, a UsageError
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
