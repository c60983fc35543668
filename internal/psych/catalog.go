package psych

import (
	"fmt"
	"sort"
)

type traitKey struct {
	instrument Instrument
	trait      Trait
}

// Catalog is a validated, read-only question bank. It is safe for concurrent
// use once constructed.
type Catalog struct {
	questions []QuestionDefinition
	byNumber  map[int]int
	counts    map[traitKey]int
	weights   map[traitKey]float64
}

// NewCatalog validates the definitions and builds a catalog ordered by number.
// Numbers must be unique and contiguous from 1, every option value must lie in
// [MinValue, MaxValue] and each question must name a trait of its instrument.
func NewCatalog(defs []QuestionDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog: no questions")
	}

	qs := make([]QuestionDefinition, len(defs))
	for i, d := range defs {
		qs[i] = cloneQuestion(d)
	}
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].Number < qs[j].Number })

	c := &Catalog{
		questions: qs,
		byNumber:  make(map[int]int, len(qs)),
		counts:    make(map[traitKey]int),
		weights:   make(map[traitKey]float64),
	}

	for i := range qs {
		q := &qs[i]
		if q.Number != i+1 {
			return nil, fmt.Errorf("catalog: question numbers must be contiguous from 1, got %d at position %d", q.Number, i+1)
		}
		if !q.Instrument.Valid() {
			return nil, fmt.Errorf("catalog: question %d: unknown instrument %q", q.Number, q.Instrument)
		}
		if !q.Instrument.Has(q.Trait) {
			return nil, fmt.Errorf("catalog: question %d: trait %q is not part of %s", q.Number, q.Trait, q.Instrument)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("catalog: question %d: no options", q.Number)
		}
		seen := make(map[int]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Value < MinValue || o.Value > MaxValue {
				return nil, fmt.Errorf("catalog: question %d: option value %d outside [%d,%d]", q.Number, o.Value, MinValue, MaxValue)
			}
			if seen[o.Value] {
				return nil, fmt.Errorf("catalog: question %d: duplicate option value %d", q.Number, o.Value)
			}
			seen[o.Value] = true
		}
		if q.Weight < 0 {
			return nil, fmt.Errorf("catalog: question %d: negative weight", q.Number)
		}
		if q.Weight == 0 {
			q.Weight = 1.0
		}

		key := traitKey{q.Instrument, q.Trait}
		c.byNumber[q.Number] = i
		c.counts[key]++
		c.weights[key] += q.Weight
	}

	for _, inst := range Instruments() {
		if c.hasInstrument(inst) && !c.Covers(inst) {
			return nil, fmt.Errorf("catalog: %s is only partially covered, every trait needs at least one question", inst)
		}
	}

	return c, nil
}

// MustCatalog is NewCatalog for static definitions known to be valid.
func MustCatalog(defs []QuestionDefinition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of questions in the bank.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns the questions of one instrument, or all of them when
// instrument is empty, ordered by number.
func (c *Catalog) Questions(instrument Instrument) []QuestionDefinition {
	out := make([]QuestionDefinition, 0, len(c.questions))
	for _, q := range c.questions {
		if instrument != "" && q.Instrument != instrument {
			continue
		}
		out = append(out, cloneQuestion(q))
	}
	return out
}

// ByNumber looks a question up by its sequence number.
func (c *Catalog) ByNumber(n int) (QuestionDefinition, bool) {
	i, ok := c.byNumber[n]
	if !ok {
		return QuestionDefinition{}, false
	}
	return cloneQuestion(c.questions[i]), true
}

// ValidateAnswer checks that n is a catalog question and v one of its option values.
func (c *Catalog) ValidateAnswer(n, v int) error {
	i, ok := c.byNumber[n]
	if !ok {
		return fmt.Errorf("question %d: %w", n, ErrUnknownQuestion)
	}
	if !c.questions[i].Allows(v) {
		return fmt.Errorf("question %d value %d: %w", n, v, ErrInvalidAnswerValue)
	}
	return nil
}

// AllowsValue reports whether v is a valid answer to question n.
func (c *Catalog) AllowsValue(n, v int) bool {
	return c.ValidateAnswer(n, v) == nil
}

// TraitCount returns how many questions contribute to the trait.
func (c *Catalog) TraitCount(instrument Instrument, trait Trait) int {
	return c.counts[traitKey{instrument, trait}]
}

// TraitWeight returns the summed weight of the trait's questions.
func (c *Catalog) TraitWeight(instrument Instrument, trait Trait) float64 {
	return c.weights[traitKey{instrument, trait}]
}

// Covers reports whether every trait of the instrument has at least one question.
func (c *Catalog) Covers(instrument Instrument) bool {
	for _, t := range instrumentTraits[instrument] {
		if c.TraitCount(instrument, t) == 0 {
			return false
		}
	}
	return true
}

func (c *Catalog) hasInstrument(instrument Instrument) bool {
	for _, t := range instrumentTraits[instrument] {
		if c.TraitCount(instrument, t) > 0 {
			return true
		}
	}
	return false
}

func cloneQuestion(q QuestionDefinition) QuestionDefinition {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
