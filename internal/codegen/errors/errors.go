// Package errors defines the failure kinds of a parameter generation pass.
// Every kind is fatal for the build step that invoked the generator.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrTraversalContract is returned when the UI walker supplied data the
	// generated artifact cannot represent, such as non-finite ranges.
	ErrTraversalContract = errors.New("traversal contract violation")

	// ErrIdentifierCollision is returned when a label cannot become a unique,
	// legal identifier in the target language.
	ErrIdentifierCollision = errors.New("identifier collision")

	// ErrOutputIO is returned when the output file cannot be created, written or replaced.
	ErrOutputIO = errors.New("output I/O failure")

	// ErrInvalidDescription is returned when a UI description cannot be decoded.
	ErrInvalidDescription = errors.New("invalid UI description")

	// ErrUnknownTarget is returned for an unsupported generator target.
	ErrUnknownTarget = errors.New("unknown generator target")

	// ErrStale is returned by check mode when the file on disk differs from
	// what would be generated.
	ErrStale = errors.New("generated file is stale")
)

// ContractViolationError describes a control whose metadata is unusable.
type ContractViolationError struct {
	Label string
	Field string
	Value float64
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("control %q: %s is %v", e.Label, e.Field, e.Value)
}

func (e *ContractViolationError) Is(target error) bool {
	return target == ErrTraversalContract
}

// IdentifierError describes a label that does not map to a usable identifier.
// Conflict is set when another label produced the same identifier.
type IdentifierError struct {
	Label    string
	Ident    string
	Conflict string
	Reason   string
}

func (e *IdentifierError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("labels %q and %q both map to identifier %q", e.Conflict, e.Label, e.Ident)
	}
	return fmt.Sprintf("label %q maps to identifier %q: %s", e.Label, e.Ident, e.Reason)
}

func (e *IdentifierError) Is(target error) bool {
	return target == ErrIdentifierCollision
}

// OutputError wraps a filesystem failure on the output path.
type OutputError struct {
	Op   string
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

func (e *OutputError) Is(target error) bool {
	return target == ErrOutputIO
}

// DescriptionError points at the offending part of a UI description.
type DescriptionError struct {
	File   string
	Path   string
	Detail string
}

func (e *DescriptionError) Error() string {
	switch {
	case e.File != "" && e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Detail)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Detail)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Detail)
	}
	return e.Detail
}

func (e *DescriptionError) Is(target error) bool {
	return target == ErrInvalidDescription
}

// NewContractViolation creates a ContractViolationError.
func NewContractViolation(label, field string, value float64) error {
	return &ContractViolationError{Label: label, Field: field, Value: value}
}

// NewCollision creates an IdentifierError for two labels sharing an identifier.
func NewCollision(label, ident, conflict string) error {
	return &IdentifierError{Label: label, Ident: ident, Conflict: conflict}
}

// NewIllegalIdentifier creates an IdentifierError for a label that is not a legal identifier.
func NewIllegalIdentifier(label, ident, reason string) error {
	return &IdentifierError{Label: label, Ident: ident, Reason: reason}
}

// NewOutputError creates an OutputError; it returns nil when err is nil.
func NewOutputError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OutputError{Op: op, Path: path, Err: err}
}

// NewDescriptionError creates a DescriptionError.
func NewDescriptionError(file, path, detail string) error {
	return &DescriptionError{File: file, Path: path, Detail: detail}
}
