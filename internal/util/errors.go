package util

import (
	"errors"
	"recruit_backend/internal/psych"
)

var (
	ErrUnknownAssessment = errors.New("assessment not found")
	ErrAlreadyCompleted  = errors.New("assessment already completed")
	ErrInvalidTransition = errors.New("invalid assessment status transition")
	ErrInvalidTestType   = errors.New("unsupported test type")
	ErrUnknownInstrument = errors.New("unknown instrument")

	ErrUnknownQuestion      = psych.ErrUnknownQuestion
	ErrInvalidAnswerValue   = psych.ErrInvalidAnswerValue
	ErrIncompleteAssessment = psych.ErrIncompleteResponses
)

// IncompleteAssessmentError carries the answered/total counts of a rejected
// completion and matches ErrIncompleteAssessment.
type IncompleteAssessmentError = psych.IncompleteError
