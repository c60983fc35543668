package model

import "time"

type AssessmentStatus string

const (
	StatusStarted    AssessmentStatus = "started"
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
	StatusAbandoned  AssessmentStatus = "abandoned"
)

func (s AssessmentStatus) Valid() bool {
	switch s {
	case StatusStarted, StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

type TestType string

const (
	TestTypeFull   TestType = "full"
	TestTypeQuick  TestType = "quick"
	TestTypeCustom TestType = "custom"
)

func (t TestType) Valid() bool {
	switch t {
	case TestTypeFull, TestTypeQuick, TestTypeCustom:
		return true
	}
	return false
}

// DiscScores is the DISC column group of an assessment.
type DiscScores struct {
	D              float64 `gorm:"column:d_score;type:decimal(4,2)"`
	I              float64 `gorm:"column:i_score;type:decimal(4,2)"`
	S              float64 `gorm:"column:s_score;type:decimal(4,2)"`
	C              float64 `gorm:"column:c_score;type:decimal(4,2)"`
	PrimaryStyle   string  `gorm:"size:20"`
	SecondaryStyle string  `gorm:"size:20"`
}

type BigFiveScores struct {
	Openness          float64 `gorm:"type:decimal(4,2)"`
	Conscientiousness float64 `gorm:"type:decimal(4,2)"`
	Extraversion      float64 `gorm:"type:decimal(4,2)"`
	Agreeableness     float64 `gorm:"type:decimal(4,2)"`
	Neuroticism       float64 `gorm:"type:decimal(4,2)"`
}

type LeadershipScores struct {
	Autocratic       float64 `gorm:"type:decimal(4,2)"`
	Democratic       float64 `gorm:"type:decimal(4,2)"`
	Transformational float64 `gorm:"type:decimal(4,2)"`
	Transactional    float64 `gorm:"type:decimal(4,2)"`
	LaissezFaire     float64 `gorm:"type:decimal(4,2)"`
	PrimaryStyle     string  `gorm:"size:30"`
}

// Assessment is one respondent's attempt at the questionnaire. Score columns
// stay zero until the attempt is completed; callers must check Status.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	SubjectID            uint             `gorm:"index;not null" json:"subjectId"`
	TestType             TestType         `gorm:"size:20;default:'full'" json:"testType"`
	Status               AssessmentStatus `gorm:"size:20;index;default:'started'" json:"status"`
	AnsweredCount        int              `gorm:"default:0" json:"answeredCount"`
	TotalQuestions       int              `gorm:"not null" json:"totalQuestions"`
	CompletionPercentage float64          `gorm:"type:decimal(5,2);default:0" json:"completionPercentage"`

	Disc       DiscScores       `gorm:"embedded;embeddedPrefix:disc_" json:"-"`
	BigFive    BigFiveScores    `gorm:"embedded;embeddedPrefix:big5_" json:"-"`
	Leadership LeadershipScores `gorm:"embedded;embeddedPrefix:leadership_" json:"-"`

	PersonalitySummary string     `gorm:"type:text" json:"personalitySummary"`
	ConfidenceScore    *float64   `gorm:"type:decimal(4,2)" json:"confidenceScore"`
	TimeSpentMinutes   int        `gorm:"default:0" json:"timeSpentMinutes"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) IsCompleted() bool {
	return a.Status == StatusCompleted
}
