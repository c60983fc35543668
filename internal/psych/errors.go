package psych

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion     = errors.New("unknown question")
	ErrInvalidAnswerValue  = errors.New("answer value outside the question's options")
	ErrIncompleteResponses = errors.New("assessment incomplete")
)

// IncompleteError reports how many catalog questions have an answer.
type IncompleteError struct {
	Answered int
	Total    int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment incomplete: %d/%d questions answered", e.Answered, e.Total)
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteResponses
}

// Shortfall is the number of questions still missing an answer.
func (e *IncompleteError) Shortfall() int {
	return e.Total - e.Answered
}
