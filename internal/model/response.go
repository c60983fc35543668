package model

import "time"

// Response is a single recorded answer. There is at most one per
// (assessment, question number); re-submission overwrites it.
type Response struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID        string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_assessment_question,priority:1" json:"assessmentId"`
	QuestionNumber      int       `gorm:"not null;uniqueIndex:idx_assessment_question,priority:2" json:"questionNumber"`
	Instrument          string    `gorm:"size:20;not null" json:"category"`
	Trait               string    `gorm:"size:50;not null" json:"subcategory"`
	Value               int       `gorm:"not null" json:"answerValue"`
	AnswerText          string    `gorm:"size:200" json:"answerText"`
	ResponseTimeSeconds int       `gorm:"default:0" json:"responseTimeSeconds"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (Response) TableName() string {
	return "assessment_responses"
}
