package quickview

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProduct  = errors.New("invalid product data")
	ErrUnknownPosition = errors.New("unknown option position")
	ErrInvalidValue    = errors.New("value is not offered by option")
	ErrAlreadyResolved = errors.New("selection already resolved")
	ErrIncomplete      = errors.New("incomplete selection")
	ErrVariantNotFound = errors.New("variant not found")
	ErrNoBundleVariant = errors.New("bundle product has no variants")
	ErrSessionNotFound = errors.New("quick view session not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNetwork         = errors.New("network failure")
)

// MissingOption is an option position the shopper still has to set.
type MissingOption struct {
	Position int        `json:"position"`
	Name     string     `json:"name"`
	Role     OptionRole `json:"role"`
}

// IncompleteSelectionError is returned by Resolve before every position has a value.
type IncompleteSelectionError struct {
	Missing []MissingOption
}

func (e *IncompleteSelectionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = m.Name
	}
	return fmt.Sprintf("incomplete selection: missing %s", strings.Join(names, ", "))
}

func (e *IncompleteSelectionError) Is(target error) bool { return target == ErrIncomplete }

// Prompt is the shopper-facing message, e.g. "Please choose your size".
func (e *IncompleteSelectionError) Prompt() string {
	if len(e.Missing) == 0 {
		return "Please complete your selection"
	}
	return "Please choose your " + strings.ToLower(e.Missing[0].Name)
}

// NetworkError wraps a collaborator failure (catalog fetch or cart add).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
