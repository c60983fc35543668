package psych

import (
	"fmt"
	"math"
	"sort"
)

// MaxConfidence caps the coverage-based confidence score.
const MaxConfidence = 95.0

type DiscResult struct {
	D         float64 `json:"d_score"`
	I         float64 `json:"i_score"`
	S         float64 `json:"s_score"`
	C         float64 `json:"c_score"`
	Primary   string  `json:"primary_style"`
	Secondary string  `json:"secondary_style"`
}

type BigFiveResult struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

type LeadershipResult struct {
	Autocratic       float64 `json:"autocratic"`
	Democratic       float64 `json:"democratic"`
	Transformational float64 `json:"transformational"`
	Transactional    float64 `json:"transactional"`
	LaissezFaire     float64 `json:"laissez_faire"`
	PrimaryStyle     string  `json:"primary_style"`
}

// Result is the frozen outcome of scoring one complete response set. An
// instrument the catalog has no questions for is left nil.
type Result struct {
	Disc       *DiscResult
	BigFive    *BigFiveResult
	Leadership *LeadershipResult
	Confidence float64
	Summary    string
}

// TraitScore is one normalized trait score.
type TraitScore struct {
	Trait Trait
	Score float64
}

// Normalize maps a trait total over k unit-weight answers on the 1..4 scale
// onto [0,10]: (sum/k - 1) * 10 / 3.
func Normalize(sum, k float64) float64 {
	if k <= 0 {
		return 0
	}
	return (sum/k - 1) * 10 / 3
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Confidence is answered coverage as a percentage capped at MaxConfidence. It
// is a completeness proxy, not a statistical interval.
func Confidence(answered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(math.Min(MaxConfidence, float64(answered)/float64(total)*100))
}

// Score turns a complete answer set (question number to raw value) into the
// per-instrument results. Every catalog question must be answered.
func Score(c *Catalog, answers map[int]int) (*Result, error) {
	for n, v := range answers {
		if err := c.ValidateAnswer(n, v); err != nil {
			return nil, err
		}
	}
	if len(answers) < c.Len() {
		return nil, &IncompleteError{Answered: len(answers), Total: c.Len()}
	}

	res := &Result{Confidence: Confidence(len(answers), c.Len())}

	if c.Covers(DISC) {
		scores := TraitScores(c, DISC, answers)
		ranked := Rank(scores)
		res.Disc = &DiscResult{
			D:         scoreOf(scores, Dominance),
			I:         scoreOf(scores, Influence),
			S:         scoreOf(scores, Steadiness),
			C:         scoreOf(scores, Conscientiousness),
			Primary:   discLetters[ranked[0].Trait],
			Secondary: discLetters[ranked[1].Trait],
		}
	}

	if c.Covers(BigFive) {
		scores := TraitScores(c, BigFive, answers)
		res.BigFive = &BigFiveResult{
			Openness:          scoreOf(scores, Openness),
			Conscientiousness: scoreOf(scores, Conscientiousness),
			Extraversion:      scoreOf(scores, Extraversion),
			Agreeableness:     scoreOf(scores, Agreeableness),
			Neuroticism:       scoreOf(scores, Neuroticism),
		}
	}

	if c.Covers(Leadership) {
		scores := TraitScores(c, Leadership, answers)
		res.Leadership = &LeadershipResult{
			Autocratic:       scoreOf(scores, Autocratic),
			Democratic:       scoreOf(scores, Democratic),
			Transformational: scoreOf(scores, Transformational),
			Transactional:    scoreOf(scores, Transactional),
			LaissezFaire:     scoreOf(scores, LaissezFaire),
			PrimaryStyle:     leadershipStyleNames[Rank(scores)[0].Trait],
		}
	}

	res.Summary = Summary(res.Disc, res.Leadership)
	return res, nil
}

// TraitScores computes the rounded normalized score of each trait of the
// instrument, in declared trait order. Each trait uses the weighted mean of
// its answers, which is sum/k when all weights are 1.
func TraitScores(c *Catalog, instrument Instrument, answers map[int]int) []TraitScore {
	sums := make(map[Trait]float64)
	for _, q := range c.Questions(instrument) {
		v, ok := answers[q.Number]
		if !ok {
			continue
		}
		sums[q.Trait] += q.Weight * float64(v)
	}

	traits := instrument.Traits()
	out := make([]TraitScore, 0, len(traits))
	for _, t := range traits {
		out = append(out, TraitScore{
			Trait: t,
			Score: Round2(Normalize(sums[t], c.TraitWeight(instrument, t))),
		})
	}
	return out
}

// Rank orders scores from highest to lowest. Equal scores keep their input
// order, so with TraitScores output ties resolve to declared trait order.
func Rank(scores []TraitScore) []TraitScore {
	ranked := make([]TraitScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// Summary renders the short personality profile line.
func Summary(disc *DiscResult, leadership *LeadershipResult) string {
	switch {
	case disc != nil && leadership != nil:
		return fmt.Sprintf("DISC profile: %s%s, Leadership style: %s", disc.Primary, disc.Secondary, leadership.PrimaryStyle)
	case disc != nil:
		return fmt.Sprintf("DISC profile: %s%s", disc.Primary, disc.Secondary)
	case leadership != nil:
		return fmt.Sprintf("Leadership style: %s", leadership.PrimaryStyle)
	}
	return ""
}

func scoreOf(scores []TraitScore, t Trait) float64 {
	for _, s := range scores {
		if s.Trait == t {
			return s.Score
		}
	}
	return 0
}

// Completion is answered/total as a percentage with two decimals.
func Completion(answered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(answered) / float64(total) * 100)
}
