package psych

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformAnswers(c *Catalog, v int) map[int]int {
	answers := make(map[int]int, c.Len())
	for _, q := range c.Questions("") {
		answers[q.Number] = v
	}
	return answers
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		sum  float64
		k    float64
		want float64
	}{
		{"single max", 4, 1, 10},
		{"single min", 1, 1, 0},
		{"three items mean three", 9, 3, 20.0 / 3},
		{"two items mean 2.5", 5, 2, 5},
		{"zero divisor", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.sum, tt.k), 1e-9)
		})
	}
}

func TestScore_AllMaximum(t *testing.T) {
	c := DefaultCatalog()
	res, err := Score(c, uniformAnswers(c, 4))
	require.NoError(t, err)

	require.NotNil(t, res.Disc)
	assert.Equal(t, DiscResult{D: 10, I: 10, S: 10, C: 10, Primary: "D", Secondary: "I"}, *res.Disc)

	require.NotNil(t, res.BigFive)
	assert.Equal(t, BigFiveResult{Openness: 10, Conscientiousness: 10, Extraversion: 10, Agreeableness: 10, Neuroticism: 10}, *res.BigFive)

	require.NotNil(t, res.Leadership)
	assert.Equal(t, LeadershipResult{
		Autocratic: 10, Democratic: 10, Transformational: 10, Transactional: 10, LaissezFaire: 10,
		PrimaryStyle: "Autocratic",
	}, *res.Leadership)

	assert.Equal(t, 95.0, res.Confidence)
	assert.Equal(t, "DISC profile: DI, Leadership style: Autocratic", res.Summary)
}

func TestScore_AllMinimum(t *testing.T) {
	c := DefaultCatalog()
	res, err := Score(c, uniformAnswers(c, 1))
	require.NoError(t, err)

	assert.Equal(t, DiscResult{Primary: "D", Secondary: "I"}, *res.Disc)
	assert.Equal(t, BigFiveResult{}, *res.BigFive)
	assert.Equal(t, LeadershipResult{PrimaryStyle: "Autocratic"}, *res.Leadership)
}

func TestScore_DiscUsesPerTraitDivisor(t *testing.T) {
	c := DefaultCatalog()
	answers := uniformAnswers(c, 1)
	// dominance: 4 + 3 + 2 = 9 over 3 items
	answers[1], answers[5], answers[9] = 4, 3, 2
	// steadiness: 4 + 3 = 7 over 2 items
	answers[3], answers[7] = 4, 3

	res, err := Score(c, answers)
	require.NoError(t, err)

	assert.Equal(t, 6.67, res.Disc.D)
	assert.Equal(t, 0.0, res.Disc.I)
	assert.Equal(t, 8.33, res.Disc.S)
	assert.Equal(t, 0.0, res.Disc.C)
	assert.Equal(t, "S", res.Disc.Primary)
	assert.Equal(t, "D", res.Disc.Secondary)
}

func TestScore_DiscTieBreakFollowsTraitOrder(t *testing.T) {
	c := DefaultCatalog()
	answers := uniformAnswers(c, 1)
	// steadiness and conscientiousness both max, the rest minimum
	answers[3], answers[7] = 4, 4
	answers[4], answers[8] = 4, 4

	res, err := Score(c, answers)
	require.NoError(t, err)
	assert.Equal(t, "S", res.Disc.Primary)
	assert.Equal(t, "C", res.Disc.Secondary)

	// influence alone on top, the three others tie at zero
	answers = uniformAnswers(c, 1)
	answers[2], answers[6], answers[10] = 4, 4, 4
	res, err = Score(c, answers)
	require.NoError(t, err)
	assert.Equal(t, "I", res.Disc.Primary)
	assert.Equal(t, "D", res.Disc.Secondary)
}

func TestScore_LeadershipPrimaryStyle(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name    string
		answers map[int]int
		want    string
	}{
		{"democratic highest", map[int]int{21: 2, 22: 3, 23: 4, 24: 1, 25: 1}, "Democratic"},
		{"laissez-faire highest", map[int]int{21: 1, 22: 1, 23: 1, 24: 1, 25: 4}, "Laissez-faire"},
		{"tie resolves to declared order", map[int]int{21: 2, 22: 3, 23: 3, 24: 3, 25: 1}, "Democratic"},
		{"transactional over transformational", map[int]int{21: 1, 22: 3, 23: 2, 24: 4, 25: 3}, "Transactional"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := uniformAnswers(c, 2)
			for n, v := range tt.answers {
				answers[n] = v
			}
			res, err := Score(c, answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Leadership.PrimaryStyle)
		})
	}
}

func TestScore_LeadershipSingleItemFormula(t *testing.T) {
	c := DefaultCatalog()
	answers := uniformAnswers(c, 1)
	answers[21], answers[22], answers[23], answers[24], answers[25] = 1, 2, 3, 4, 2

	res, err := Score(c, answers)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Leadership.Autocratic)
	assert.Equal(t, 3.33, res.Leadership.Transformational)
	assert.Equal(t, 6.67, res.Leadership.Democratic)
	assert.Equal(t, 10.0, res.Leadership.Transactional)
	assert.Equal(t, 3.33, res.Leadership.LaissezFaire)
}

func TestScore_BigFive(t *testing.T) {
	c := DefaultCatalog()
	answers := uniformAnswers(c, 1)
	answers[11], answers[12] = 4, 3 // openness 7/2
	answers[15], answers[16] = 2, 2 // extraversion 4/2
	answers[19], answers[20] = 4, 4 // anxious agrees, calm disagrees

	res, err := Score(c, answers)
	require.NoError(t, err)
	assert.Equal(t, 8.33, res.BigFive.Openness)
	assert.Equal(t, 3.33, res.BigFive.Extraversion)
	assert.Equal(t, 10.0, res.BigFive.Neuroticism)
	assert.Equal(t, 0.0, res.BigFive.Agreeableness)
}

func TestDefaultCatalog_NeuroticismKeyedTowardTrait(t *testing.T) {
	c := DefaultCatalog()
	anxious, _ := c.ByNumber(19)
	calm, _ := c.ByNumber(20)

	assert.Equal(t, "Strongly agree", anxious.LabelFor(4))
	assert.Equal(t, "Strongly disagree", calm.LabelFor(4))
	assert.False(t, anxious.ReverseScored)
	assert.True(t, calm.ReverseScored)
}

func TestScore_RandomResponsesStayInRange(t *testing.T) {
	c := DefaultCatalog()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		answers := make(map[int]int, c.Len())
		for _, q := range c.Questions("") {
			answers[q.Number] = q.Options[rng.Intn(len(q.Options))].Value
		}
		res, err := Score(c, answers)
		require.NoError(t, err)

		for _, v := range []float64{
			res.Disc.D, res.Disc.I, res.Disc.S, res.Disc.C,
			res.BigFive.Openness, res.BigFive.Conscientiousness, res.BigFive.Extraversion,
			res.BigFive.Agreeableness, res.BigFive.Neuroticism,
			res.Leadership.Autocratic, res.Leadership.Democratic, res.Leadership.Transformational,
			res.Leadership.Transactional, res.Leadership.LaissezFaire,
		} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 10.0)
		}
		assert.NotEqual(t, res.Disc.Primary, res.Disc.Secondary)
		assert.Contains(t, []string{"D", "I", "S", "C"}, res.Disc.Primary)
		assert.Contains(t, []string{"D", "I", "S", "C"}, res.Disc.Secondary)
	}
}

func TestScore_Incomplete(t *testing.T) {
	c := DefaultCatalog()
	answers := uniformAnswers(c, 3)
	delete(answers, 25)

	_, err := Score(c, answers)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteResponses)

	var inc *IncompleteError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, 24, inc.Answered)
	assert.Equal(t, 25, inc.Total)
	assert.Equal(t, 1, inc.Shortfall())
	assert.Contains(t, err.Error(), "24/25")
}

func TestScore_RejectsBadInput(t *testing.T) {
	c := DefaultCatalog()

	answers := uniformAnswers(c, 2)
	answers[7] = 5
	_, err := Score(c, answers)
	assert.ErrorIs(t, err, ErrInvalidAnswerValue)

	answers = uniformAnswers(c, 2)
	answers[26] = 2
	_, err = Score(c, answers)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestScore_SyntheticWeightedCatalog(t *testing.T) {
	c, err := NewCatalog([]QuestionDefinition{
		{Number: 1, Instrument: Leadership, Trait: Autocratic, Options: agreement(), Weight: 3},
		{Number: 2, Instrument: Leadership, Trait: Autocratic, Options: agreement(), Weight: 1},
		{Number: 3, Instrument: Leadership, Trait: Democratic, Options: agreement()},
		{Number: 4, Instrument: Leadership, Trait: Transformational, Options: agreement()},
		{Number: 5, Instrument: Leadership, Trait: Transactional, Options: agreement()},
		{Number: 6, Instrument: Leadership, Trait: LaissezFaire, Options: agreement()},
	})
	require.NoError(t, err)

	res, err := Score(c, map[int]int{1: 4, 2: 1, 3: 3, 4: 1, 5: 1, 6: 1})
	require.NoError(t, err)

	assert.Nil(t, res.Disc)
	assert.Nil(t, res.BigFive)
	require.NotNil(t, res.Leadership)
	// (3*4 + 1*1) / 4 = 3.25 -> 7.5
	assert.Equal(t, 7.5, res.Leadership.Autocratic)
	assert.Equal(t, 6.67, res.Leadership.Democratic)
	assert.Equal(t, "Autocratic", res.Leadership.PrimaryStyle)
	assert.Equal(t, "Leadership style: Autocratic", res.Summary)
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 95.0, Confidence(25, 25))
	assert.Equal(t, 95.0, Confidence(24, 25))
	assert.Equal(t, 92.0, Confidence(23, 25))
	assert.Equal(t, 0.0, Confidence(0, 25))
	assert.Equal(t, 0.0, Confidence(3, 0))
}

func TestRank_IsStable(t *testing.T) {
	in := []TraitScore{{Dominance, 5}, {Influence, 7}, {Steadiness, 5}, {Conscientiousness, 7}}
	got := Rank(in)
	assert.Equal(t, []TraitScore{{Influence, 7}, {Conscientiousness, 7}, {Dominance, 5}, {Steadiness, 5}}, got)
	assert.Equal(t, Dominance, in[0].Trait, "input must not be reordered")
}
