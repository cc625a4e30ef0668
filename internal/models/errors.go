package models

import (
	"errors"
	"fmt"
	"strings"
)

// Стандартные ошибки движка решений
var (
	// Session errors
	ErrEmptySessionCandidate = errors.New("no decisions available for this day")
	ErrIncompleteSubmission  = errors.New("not all decisions have a selected option")
	ErrInvalidSessionState   = errors.New("operation is not valid in the current session state")
	ErrDecisionNotInSession  = errors.New("decision is not part of the active session")
	ErrOptionNotFound        = errors.New("option not found for decision")
	ErrDayAlreadyCompleted   = errors.New("decisions for this day are already completed")

	// Ledger errors
	ErrCommitmentFailed = errors.New("decision commitment failed")
	ErrRecordNotFound   = errors.New("decision record not found")
	ErrHashAlreadySet   = errors.New("decision record already has a commitment hash")

	// Scenario errors
	ErrNoActiveScenario = errors.New("no active scenario")

	// General
	ErrUnknownSector = errors.New("unknown sector")
	ErrInvalidInput  = errors.New("invalid input data")
)

// IncompleteSubmissionError перечисляет решения без выбранного варианта.
type IncompleteSubmissionError struct {
	Unanswered []string
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("%s: %d unanswered (%s)", ErrIncompleteSubmission.Error(), len(e.Unanswered), strings.Join(e.Unanswered, ", "))
}

// Is позволяет errors.Is(err, ErrIncompleteSubmission).
func (e *IncompleteSubmissionError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}
