package service

import (
	"recruit_backend/internal/model"
	"recruit_backend/internal/psych"
	"time"
)

// AssessmentView is the API representation of an assessment. Result groups
// stay nil until the assessment is completed.
type AssessmentView struct {
	ID                string                  `json:"id"`
	SubjectID         uint                    `json:"subjectId"`
	TestType          model.TestType          `json:"testType"`
	Status            model.AssessmentStatus  `json:"status"`
	DiscResults       *psych.DiscResult       `json:"disc_results"`
	BigFiveResults    *psych.BigFiveResult    `json:"big5_results"`
	LeadershipResults *psych.LeadershipResult `json:"leadership_results"`
	Analysis          Analysis                `json:"analysis"`
	Metadata          Metadata                `json:"metadata"`
	Timestamps        Timestamps              `json:"timestamps"`
	Responses         []ResponseView          `json:"responses,omitempty"`
}

type Analysis struct {
	PersonalitySummary string `json:"personality_summary"`
}

type Metadata struct {
	AnsweredCount        int      `json:"answeredCount"`
	TotalQuestions       int      `json:"totalQuestions"`
	CompletionPercentage float64  `json:"completionPercentage"`
	TimeSpentMinutes     int      `json:"timeSpentMinutes"`
	ConfidenceScore      *float64 `json:"confidenceScore"`
}

type Timestamps struct {
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ResponseView struct {
	QuestionNumber      int       `json:"questionNumber"`
	Category            string    `json:"category"`
	Subcategory         string    `json:"subcategory"`
	Value               int       `json:"answerValue"`
	AnswerText          string    `json:"answerText"`
	ResponseTimeSeconds int       `json:"responseTimeSeconds"`
	AnsweredAt          time.Time `json:"answeredAt"`
}

// Progress is returned after every recorded answer.
type Progress struct {
	AnsweredCount        int                    `json:"answeredCount"`
	TotalQuestions       int                    `json:"totalQuestions"`
	CompletionPercentage float64                `json:"completionPercentage"`
	Status               model.AssessmentStatus `json:"status"`
}

func NewAssessmentView(a *model.Assessment, c *psych.Catalog) *AssessmentView {
	v := &AssessmentView{
		ID:        a.ID,
		SubjectID: a.SubjectID,
		TestType:  a.TestType,
		Status:    a.Status,
		Metadata: Metadata{
			AnsweredCount:        a.AnsweredCount,
			TotalQuestions:       a.TotalQuestions,
			CompletionPercentage: a.CompletionPercentage,
			TimeSpentMinutes:     a.TimeSpentMinutes,
		},
		Timestamps: Timestamps{
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		},
	}

	if !a.IsCompleted() {
		return v
	}

	v.Analysis.PersonalitySummary = a.PersonalitySummary
	v.Metadata.ConfidenceScore = a.ConfidenceScore

	if c.Covers(psych.DISC) {
		v.DiscResults = &psych.DiscResult{
			D:         a.Disc.D,
			I:         a.Disc.I,
			S:         a.Disc.S,
			C:         a.Disc.C,
			Primary:   a.Disc.PrimaryStyle,
			Secondary: a.Disc.SecondaryStyle,
		}
	}
	if c.Covers(psych.BigFive) {
		v.BigFiveResults = &psych.BigFiveResult{
			Openness:          a.BigFive.Openness,
			Conscientiousness: a.BigFive.Conscientiousness,
			Extraversion:      a.BigFive.Extraversion,
			Agreeableness:     a.BigFive.Agreeableness,
			Neuroticism:       a.BigFive.Neuroticism,
		}
	}
	if c.Covers(psych.Leadership) {
		v.LeadershipResults = &psych.LeadershipResult{
			Autocratic:       a.Leadership.Autocratic,
			Democratic:       a.Leadership.Democratic,
			Transformational: a.Leadership.Transformational,
			Transactional:    a.Leadership.Transactional,
			LaissezFaire:     a.Leadership.LaissezFaire,
			PrimaryStyle:     a.Leadership.PrimaryStyle,
		}
	}
	return v
}

func newResponseViews(rs []model.Response) []ResponseView {
	out := make([]ResponseView, 0, len(rs))
	for _, r := range rs {
		out = append(out, ResponseView{
			QuestionNumber:      r.QuestionNumber,
			Category:            r.Instrument,
			Subcategory:         r.Trait,
			Value:               r.Value,
			AnswerText:          r.AnswerText,
			ResponseTimeSeconds: r.ResponseTimeSeconds,
			AnsweredAt:          r.UpdatedAt,
		})
	}
	return out
}

// applyResult copies a scoring result onto the assessment record and marks
// it completed.
func applyResult(a *model.Assessment, res *psych.Result, now time.Time) {
	if res.Disc != nil {
		a.Disc = model.DiscScores{
			D:              res.Disc.D,
			I:              res.Disc.I,
			S:              res.Disc.S,
			C:              res.Disc.C,
			PrimaryStyle:   res.Disc.Primary,
			SecondaryStyle: res.Disc.Secondary,
		}
	}
	if res.BigFive != nil {
		a.BigFive = model.BigFiveScores{
			Openness:          res.BigFive.Openness,
			Conscientiousness: res.BigFive.Conscientiousness,
			Extraversion:      res.BigFive.Extraversion,
			Agreeableness:     res.BigFive.Agreeableness,
			Neuroticism:       res.BigFive.Neuroticism,
		}
	}
	if res.Leadership != nil {
		a.Leadership = model.LeadershipScores{
			Autocratic:       res.Leadership.Autocratic,
			Democratic:       res.Leadership.Democratic,
			Transformational: res.Leadership.Transformational,
			Transactional:    res.Leadership.Transactional,
			LaissezFaire:     res.Leadership.LaissezFaire,
			PrimaryStyle:     res.Leadership.PrimaryStyle,
		}
	}

	confidence := res.Confidence
	a.ConfidenceScore = &confidence
	a.PersonalitySummary = res.Summary
	a.Status = model.StatusCompleted
	a.CompletedAt = &now
	if !a.StartedAt.IsZero() && now.After(a.StartedAt) {
		a.TimeSpentMinutes = int(now.Sub(a.StartedAt).Minutes())
	}
}
