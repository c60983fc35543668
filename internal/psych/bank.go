package psych

import "sync"

func agreement() []Option {
	return []Option{
		{Value: 1, Label: "Strongly disagree"},
		{Value: 2, Label: "Somewhat disagree"},
		{Value: 3, Label: "Somewhat agree"},
		{Value: 4, Label: "Strongly agree"},
	}
}

// reversedAgreement is agreement with the values inverted, for items worded
// against the direction of their trait.
func reversedAgreement() []Option {
	return []Option{
		{Value: 4, Label: "Strongly disagree"},
		{Value: 3, Label: "Somewhat disagree"},
		{Value: 2, Label: "Somewhat agree"},
		{Value: 1, Label: "Strongly agree"},
	}
}

func defaultQuestions() []QuestionDefinition {
	return []QuestionDefinition{
		// DISC
		{Number: 1, Text: "In work situations, I tend to:", Instrument: DISC, Trait: Dominance, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Make decisions quickly and take control"},
			{Value: 3, Label: "Lead when necessary"},
			{Value: 2, Label: "Collaborate with others on decisions"},
			{Value: 1, Label: "Prefer that others make the decisions"},
		}},
		{Number: 2, Text: "When working in a team, I:", Instrument: DISC, Trait: Influence, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Motivate and inspire others with enthusiasm"},
			{Value: 3, Label: "Contribute creative ideas"},
			{Value: 2, Label: "Support other people's ideas"},
			{Value: 1, Label: "Prefer to work behind the scenes"},
		}},
		{Number: 3, Text: "My approach to change is:", Instrument: DISC, Trait: Steadiness, Scale: Choice4, Options: []Option{
			{Value: 1, Label: "I embrace change quickly"},
			{Value: 2, Label: "I adapt gradually"},
			{Value: 3, Label: "I prefer stability but accept change"},
			{Value: 4, Label: "I highly value stability and routine"},
		}},
		{Number: 4, Text: "When carrying out tasks, I:", Instrument: DISC, Trait: Conscientiousness, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Follow detailed procedures and check everything"},
			{Value: 3, Label: "Plan carefully before executing"},
			{Value: 2, Label: "Balance planning with action"},
			{Value: 1, Label: "Prefer to act quickly and adjust later"},
		}},
		{Number: 5, Text: "In conflicts, I tend to:", Instrument: DISC, Trait: Dominance, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Confront the problem directly"},
			{Value: 3, Label: "Look for assertive solutions"},
			{Value: 2, Label: "Mediate and seek consensus"},
			{Value: 1, Label: "Avoid confrontation when possible"},
		}},
		{Number: 6, Text: "My communication style is:", Instrument: DISC, Trait: Influence, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Expressive and persuasive"},
			{Value: 3, Label: "Friendly and optimistic"},
			{Value: 2, Label: "Calm and respectful"},
			{Value: 1, Label: "Direct and factual"},
		}},
		{Number: 7, Text: "I prefer work environments that are:", Instrument: DISC, Trait: Steadiness, Scale: Choice4, Options: []Option{
			{Value: 1, Label: "Dynamic and constantly changing"},
			{Value: 2, Label: "Collaborative with some variety"},
			{Value: 3, Label: "Stable with gradual change"},
			{Value: 4, Label: "Predictable and well structured"},
		}},
		{Number: 8, Text: "When I receive feedback, I:", Instrument: DISC, Trait: Conscientiousness, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Analyse it in detail and implement improvements"},
			{Value: 3, Label: "Consider the suggestions carefully"},
			{Value: 2, Label: "Accept it and apply it when relevant"},
			{Value: 1, Label: "Prefer direct feedback and quick action"},
		}},
		{Number: 9, Text: "My main motivation at work is:", Instrument: DISC, Trait: Dominance, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Achieving results and overcoming challenges"},
			{Value: 3, Label: "Recognition and positive impact"},
			{Value: 2, Label: "Harmony and solid relationships"},
			{Value: 1, Label: "Quality and precision in my work"},
		}},
		{Number: 10, Text: "Under pressure, I:", Instrument: DISC, Trait: Influence, Scale: Choice4, Options: []Option{
			{Value: 1, Label: "Stay focused and make quick decisions"},
			{Value: 4, Label: "Seek support from the team and keep morale high"},
			{Value: 3, Label: "Work consistently and reliably"},
			{Value: 2, Label: "Analyse carefully before acting"},
		}},

		// Big Five
		{Number: 11, Text: "I consider myself a creative and imaginative person:", Instrument: BigFive, Trait: Openness, Scale: Likert4, Options: agreement()},
		{Number: 12, Text: "I like to try new and different things:", Instrument: BigFive, Trait: Openness, Scale: Likert4, Options: agreement()},
		{Number: 13, Text: "I am an organised and disciplined person:", Instrument: BigFive, Trait: Conscientiousness, Scale: Likert4, Options: agreement()},
		{Number: 14, Text: "I always keep my commitments and deadlines:", Instrument: BigFive, Trait: Conscientiousness, Scale: Likert4, Options: agreement()},
		{Number: 15, Text: "I feel energised when I am with other people:", Instrument: BigFive, Trait: Extraversion, Scale: Likert4, Options: agreement()},
		{Number: 16, Text: "I like being the centre of attention:", Instrument: BigFive, Trait: Extraversion, Scale: Likert4, Options: agreement()},
		{Number: 17, Text: "I am an empathetic and understanding person:", Instrument: BigFive, Trait: Agreeableness, Scale: Likert4, Options: agreement()},
		{Number: 18, Text: "I prefer cooperating to competing with others:", Instrument: BigFive, Trait: Agreeableness, Scale: Likert4, Options: agreement()},
		// Neuroticism is keyed toward the trait: agreeing with 19 or disagreeing
		// with 20 raises the score, so a high value means high neuroticism.
		{Number: 19, Text: "I often feel anxious or worried:", Instrument: BigFive, Trait: Neuroticism, Scale: Likert4, Options: agreement()},
		{Number: 20, Text: "I stay calm even in stressful situations:", Instrument: BigFive, Trait: Neuroticism, Scale: Likert4, Options: reversedAgreement(), ReverseScored: true},

		// Leadership
		{Number: 21, Text: "As a leader, I prefer to:", Instrument: Leadership, Trait: Autocratic, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Make decisions alone and give clear instructions"},
			{Value: 3, Label: "Consult the team but decide alone"},
			{Value: 2, Label: "Decide together with the team"},
			{Value: 1, Label: "Let the team decide autonomously"},
		}},
		{Number: 22, Text: "My approach to motivating the team is:", Instrument: Leadership, Trait: Transformational, Scale: Choice4, Options: []Option{
			{Value: 4, Label: "Inspire with a shared vision"},
			{Value: 3, Label: "Recognise and reward good performance"},
			{Value: 2, Label: "Set clear goals and follow up"},
			{Value: 1, Label: "Give autonomy and trust the team"},
		}},
		{Number: 23, Text: "When there are problems in the team, I:", Instrument: Leadership, Trait: Democratic, Scale: Choice4, Options: []Option{
			{Value: 1, Label: "Resolve them quickly with authority"},
			{Value: 4, Label: "Facilitate discussions to find solutions"},
			{Value: 3, Label: "Negotiate agreements between the parties"},
			{Value: 2, Label: "Let the team sort it out on its own"},
		}},
		{Number: 24, Text: "My main focus as a leader is:", Instrument: Leadership, Trait: Transactional, Scale: Choice4, Options: []Option{
			{Value: 2, Label: "Developing each person's potential"},
			{Value: 1, Label: "Creating a culture of innovation"},
			{Value: 4, Label: "Making sure targets are met"},
			{Value: 3, Label: "Keeping the team in harmony and well-being"},
		}},
		{Number: 25, Text: "My supervision style is:", Instrument: Leadership, Trait: LaissezFaire, Scale: Choice4, Options: []Option{
			{Value: 1, Label: "Close and constant supervision"},
			{Value: 2, Label: "Regular follow-up with feedback"},
			{Value: 3, Label: "Moderate supervision with autonomy"},
			{Value: 4, Label: "Maximum autonomy with minimal supervision"},
		}},
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DefaultCatalog returns the 25-item unified bank covering DISC, Big Five and
// leadership styles.
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustCatalog(defaultQuestions())
	})
	return defaultCatalog
}
