package psych

// Instrument identifies one of the psychometric frameworks in the bank.
type Instrument string

const (
	DISC       Instrument = "disc"
	BigFive    Instrument = "big5"
	Leadership Instrument = "leadership"
)

// Trait is a sub-scale within an instrument.
type Trait string

const (
	Dominance         Trait = "dominance"
	Influence         Trait = "influence"
	Steadiness        Trait = "steadiness"
	Conscientiousness Trait = "conscientiousness"

	Openness      Trait = "openness"
	Extraversion  Trait = "extraversion"
	Agreeableness Trait = "agreeableness"
	Neuroticism   Trait = "neuroticism"

	Autocratic       Trait = "autocratic"
	Democratic       Trait = "democratic"
	Transformational Trait = "transformational"
	Transactional    Trait = "transactional"
	LaissezFaire     Trait = "laissez_faire"
)

type ScaleType string

const (
	Likert4 ScaleType = "likert_4"
	Choice4 ScaleType = "choice_4"
)

const (
	MinValue = 1
	MaxValue = 4
)

// instrumentTraits declares the trait order of every instrument. The order is
// also the tie-break order used when classifying dominant styles.
var instrumentTraits = map[Instrument][]Trait{
	DISC:       {Dominance, Influence, Steadiness, Conscientiousness},
	BigFive:    {Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism},
	Leadership: {Autocratic, Democratic, Transformational, Transactional, LaissezFaire},
}

var discLetters = map[Trait]string{
	Dominance:         "D",
	Influence:         "I",
	Steadiness:        "S",
	Conscientiousness: "C",
}

var leadershipStyleNames = map[Trait]string{
	Autocratic:       "Autocratic",
	Democratic:       "Democratic",
	Transformational: "Transformational",
	Transactional:    "Transactional",
	LaissezFaire:     "Laissez-faire",
}

// Instruments returns the instruments in catalog order.
func Instruments() []Instrument {
	return []Instrument{DISC, BigFive, Leadership}
}

// Traits returns a copy of the declared trait order for the instrument.
func (i Instrument) Traits() []Trait {
	traits := instrumentTraits[i]
	out := make([]Trait, len(traits))
	copy(out, traits)
	return out
}

func (i Instrument) Valid() bool {
	_, ok := instrumentTraits[i]
	return ok
}

// Has reports whether the trait belongs to the instrument.
func (i Instrument) Has(t Trait) bool {
	for _, tr := range instrumentTraits[i] {
		if tr == t {
			return true
		}
	}
	return false
}

// Option is one answer choice of a question.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"text"`
}

// QuestionDefinition is an immutable entry of the question bank.
//
// Reverse-keyed items are encoded directly in Options: the option the
// respondent endorses carries the already-inverted value, so ReverseScored is
// descriptive only and never changes the arithmetic.
type QuestionDefinition struct {
	Number        int        `json:"questionNumber"`
	Text          string     `json:"questionText"`
	Instrument    Instrument `json:"category"`
	Trait         Trait      `json:"subcategory"`
	Scale         ScaleType  `json:"scaleType"`
	Options       []Option   `json:"options"`
	ReverseScored bool       `json:"isReverseScored"`
	Weight        float64    `json:"weight"`
}

// Allows reports whether v is one of the question's option values.
func (q QuestionDefinition) Allows(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// LabelFor returns the label of the option carrying value v.
func (q QuestionDefinition) LabelFor(v int) string {
	for _, o := range q.Options {
		if o.Value == v {
			return o.Label
		}
	}
	return ""
}
