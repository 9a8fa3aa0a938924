// Package content holds the course catalog. Chapters are compiled in; the
// database only ever stores per-user state about them.
package content

// TotalChapters is the number of chapters a reader can take a test for. The
// epilogue has no test and does not count toward the certificate.
const TotalChapters = 10

// SampleChapter is readable without payment.
const SampleChapter = 1

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
	Explanation   string   `json:"-"`
}

type Chapter struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary"`
	KeyLearnings []string   `json:"key_learnings"`
	Text         string     `json:"text,omitempty"`
	Questions    []Question `json:"-"`
}

// Get returns the chapter with the given number, or false when no such
// chapter exists.
func Get(number int) (Chapter, bool) {
	for _, ch := range chapters {
		if ch.Number == number {
			return ch, true
		}
	}
	return Chapter{}, false
}

// All returns the catalog in reading order.
func All() []Chapter {
	out := make([]Chapter, len(chapters))
	copy(out, chapters)
	return out
}

var chapters = []Chapter{
	{
		Number:  1,
		Title:   "The Living Wave",
		Summary: "Introduction to the Living Wave concept and how we navigate between success and failure.",
		KeyLearnings: []string{
			"Understanding the Living Wave metaphor",
			"The power of gratitude as the mother of all virtues",
			"Know Thyself - Socratic foundation for success",
			"Living LIKE a winner vs being a winner",
		},
		Text: "The Living Wave is an imaginary yet real line that traces the trajectory of a life...",
		Questions: []Question{
			{
				ID:       1,
				Question: "What does Svaha describe the 'Living Wave' as?",
				Options: []string{
					"A physical force that controls our movements",
					"An imaginary line representing the trajectory of life that we navigate",
					"A mathematical equation for success",
					"A religious concept from ancient texts",
				},
				CorrectAnswer: 1,
				Explanation:   "Svaha describes the Living Wave as an imaginary yet real line/wave that represents our life's trajectory.",
			},
			{
				ID:            2,
				Question:      "Which virtue does the chapter call 'the mother of all virtues'?",
				Options:       []string{"Courage", "Patience", "Gratitude", "Discipline"},
				CorrectAnswer: 2,
				Explanation:   "Gratitude is presented as the root from which the other virtues grow.",
			},
			{
				ID:            3,
				Question:      "What is the Socratic foundation the chapter builds on?",
				Options:       []string{"Know Thyself", "Carpe Diem", "Memento Mori", "Amor Fati"},
				CorrectAnswer: 0,
				Explanation:   "'Know Thyself' is the starting point for living LIKE a winner.",
			},
		},
	},
	{
		Number:  2,
		Title:   "Riding the Crest",
		Summary: "What success phases demand of us and why peaks are the most dangerous part of the wave.",
		KeyLearnings: []string{
			"Why peaks breed complacency",
			"Humility as insurance at the top",
			"Reading the early signs of a descending wave",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "According to the chapter, what makes the crest of the wave dangerous?",
				Options: []string{
					"It attracts rivals",
					"It breeds complacency",
					"It cannot be sustained financially",
					"It isolates us from family",
				},
				CorrectAnswer: 1,
				Explanation:   "Success phases dull our alertness; complacency is the hidden cost of the peak.",
			},
			{
				ID:            2,
				Question:      "What is offered as the counterweight to pride at the peak?",
				Options:       []string{"Ambition", "Humility", "Caution", "Silence"},
				CorrectAnswer: 1,
				Explanation:   "Humility keeps the winner teachable while the wave is high.",
			},
			{
				ID:       3,
				Question: "How should a reader treat the first signs of a descending wave?",
				Options: []string{
					"Ignore them and stay positive",
					"Blame external circumstances",
					"Acknowledge them early and adjust",
					"Wait until the trough to act",
				},
				CorrectAnswer: 2,
				Explanation:   "Early acknowledgement turns a crash into a managed descent.",
			},
		},
	},
	{
		Number:  3,
		Title:   "The Trough",
		Summary: "Failure as a phase, not an identity, and the disciplines that shorten the low points.",
		KeyLearnings: []string{
			"Separating the failure from the person",
			"Routines that hold when motivation does not",
			"The trough as the best classroom",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "How does the chapter ask us to regard failure?",
				Options: []string{
					"As a permanent identity",
					"As a phase of the wave",
					"As proof of bad luck",
					"As something to hide",
				},
				CorrectAnswer: 1,
				Explanation:   "Failure is a position on the wave, never the name of the person riding it.",
			},
			{
				ID:            2,
				Question:      "What carries a person through the trough when motivation fails?",
				Options:       []string{"Willpower", "Routines", "Other people's praise", "Distraction"},
				CorrectAnswer: 1,
				Explanation:   "Routines are the rails that keep us moving when feeling cannot.",
			},
			{
				ID:       3,
				Question: "Why is the trough called the best classroom?",
				Options: []string{
					"Lessons there are cheapest",
					"Nothing else competes for attention and lessons are remembered",
					"Teachers appear only in hard times",
					"It is the longest phase",
				},
				CorrectAnswer: 1,
				Explanation:   "Low points strip away noise; what is learned there stays learned.",
			},
		},
	},
	{
		Number:  4,
		Title:   "Know Thyself, Then Act",
		Summary: "Turning self-knowledge into daily decisions instead of abstract reflection.",
		KeyLearnings: []string{
			"Auditing strengths honestly",
			"Choosing arenas that fit the self you found",
			"Acting before certainty arrives",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "What does the chapter say self-knowledge is for?",
				Options: []string{
					"Journaling",
					"Daily decisions",
					"Impressing mentors",
					"Future biographers",
				},
				CorrectAnswer: 1,
				Explanation:   "Self-knowledge that never reaches a decision is decoration.",
			},
			{
				ID:       2,
				Question: "When should action begin, per the chapter?",
				Options: []string{
					"Once certainty arrives",
					"Before certainty arrives",
					"After a mentor approves",
					"Only at a wave's crest",
				},
				CorrectAnswer: 1,
				Explanation:   "Certainty follows action more often than it precedes it.",
			},
			{
				ID:       3,
				Question: "What follows an honest audit of strengths?",
				Options: []string{
					"Choosing arenas that fit them",
					"Fixing every weakness first",
					"Comparing audits with friends",
					"Repeating the audit",
				},
				CorrectAnswer: 0,
				Explanation:   "The audit exists so we can pick battlefields that suit us.",
			},
		},
	},
	{
		Number:  5,
		Title:   "Gratitude in Motion",
		Summary: "Practising gratitude as an active discipline rather than a mood.",
		KeyLearnings: []string{
			"Gratitude as practice, not feeling",
			"Naming benefactors specifically",
			"How gratitude steadies the wave",
		},
		Questions: []Question{
			{
				ID:            1,
				Question:      "How is gratitude characterised in this chapter?",
				Options:       []string{"A mood", "A discipline", "A reward", "A talent"},
				CorrectAnswer: 1,
				Explanation:   "Gratitude is something done daily, not something waited for.",
			},
			{
				ID:       2,
				Question: "What makes a gratitude practice concrete?",
				Options: []string{
					"Keeping it private",
					"Naming specific benefactors",
					"Doing it only on good days",
					"Writing long essays",
				},
				CorrectAnswer: 1,
				Explanation:   "Specific names and specific debts keep the practice honest.",
			},
			{
				ID:       3,
				Question: "What effect does gratitude have on the Living Wave?",
				Options: []string{
					"It raises every crest",
					"It steadies the amplitude",
					"It removes the troughs",
					"It has no effect",
				},
				CorrectAnswer: 1,
				Explanation:   "Gratitude dampens the swings: lower highs of pride, shallower lows of despair.",
			},
		},
	},
	{
		Number:  6,
		Title:   "The Company You Keep",
		Summary: "How the people around us set the default shape of our wave.",
		KeyLearnings: []string{
			"Peers as the silent curriculum",
			"Pruning relationships without cruelty",
			"Finding wave-steadying company",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "What does the chapter call the people around us?",
				Options: []string{
					"The silent curriculum",
					"The audience",
					"The safety net",
					"The jury",
				},
				CorrectAnswer: 0,
				Explanation:   "We learn most from company we never chose to learn from.",
			},
			{
				ID:       2,
				Question: "How should draining relationships be handled?",
				Options: []string{
					"Ended abruptly",
					"Pruned without cruelty",
					"Endured indefinitely",
					"Ignored",
				},
				CorrectAnswer: 1,
				Explanation:   "Distance can be created with kindness; cruelty is never required.",
			},
			{
				ID:       3,
				Question: "What kind of company does the chapter say to seek?",
				Options: []string{
					"Company that flatters",
					"Company that steadies the wave",
					"Company that competes",
					"Company that entertains",
				},
				CorrectAnswer: 1,
				Explanation:   "The right people dampen our extremes the way gratitude does.",
			},
		},
	},
	{
		Number:  7,
		Title:   "Work as Worship",
		Summary: "Bringing full attention to work regardless of the wave's current phase.",
		KeyLearnings: []string{
			"Effort decoupled from outcome",
			"Craftsmanship as self-respect",
			"Why half-work costs more than rest",
		},
		Questions: []Question{
			{
				ID:            1,
				Question:      "What should effort be decoupled from?",
				Options:       []string{"Outcome", "Skill", "Schedule", "Recognition"},
				CorrectAnswer: 0,
				Explanation:   "The work is owed full attention whether or not the outcome cooperates.",
			},
			{
				ID:            2,
				Question:      "Craftsmanship is presented as a form of what?",
				Options:       []string{"Marketing", "Self-respect", "Competition", "Tradition"},
				CorrectAnswer: 1,
				Explanation:   "How we work is how we regard ourselves.",
			},
			{
				ID:       3,
				Question: "Why is half-work worse than rest?",
				Options: []string{
					"It produces nothing and restores nothing",
					"It is harder to schedule",
					"It annoys colleagues",
					"It is impossible to measure",
				},
				CorrectAnswer: 0,
				Explanation:   "Half-work spends the hours of work and the recovery of rest, and buys neither.",
			},
		},
	},
	{
		Number:  8,
		Title:   "Money and the Wave",
		Summary: "A winner's relationship with money across crests and troughs.",
		KeyLearnings: []string{
			"Money as amplifier, not author",
			"Spending rules set at the crest",
			"Generosity as a stabiliser",
		},
		Questions: []Question{
			{
				ID:            1,
				Question:      "What role does the chapter assign to money?",
				Options:       []string{"Author of the wave", "Amplifier of character", "Measure of worth", "Goal of the course"},
				CorrectAnswer: 1,
				Explanation:   "Money amplifies whoever is holding it; it writes nothing on its own.",
			},
			{
				ID:            2,
				Question:      "When should spending rules be set?",
				Options:       []string{"At the crest", "At the trough", "Never", "Monthly"},
				CorrectAnswer: 0,
				Explanation:   "Rules made in plenty protect us in scarcity; the reverse is too late.",
			},
			{
				ID:            3,
				Question:      "What does generosity do to the wave?",
				Options:       []string{"Flattens it entirely", "Acts as a stabiliser", "Steepens the crests", "Has no effect"},
				CorrectAnswer: 1,
				Explanation:   "Giving loosens money's grip and steadies the rider.",
			},
		},
	},
	{
		Number:  9,
		Title:   "Failure Rehearsed",
		Summary: "Preparing for descents before they happen so they never become crashes.",
		KeyLearnings: []string{
			"Premeditation of setbacks",
			"Keeping a trough kit",
			"Rehearsed responses beat improvised ones",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "What ancient practice does the chapter adapt?",
				Options: []string{
					"Premeditation of setbacks",
					"Fasting",
					"Oath-taking",
					"Pilgrimage",
				},
				CorrectAnswer: 0,
				Explanation:   "Imagining the descent in advance removes its power to surprise.",
			},
			{
				ID:       2,
				Question: "What belongs in the 'trough kit'?",
				Options: []string{
					"Savings, routines and named allies",
					"Motivational quotes",
					"A list of people to blame",
					"Backup career plans only",
				},
				CorrectAnswer: 0,
				Explanation:   "The kit is practical: money, habits and people, decided in daylight.",
			},
			{
				ID:       3,
				Question: "Why do rehearsed responses beat improvised ones?",
				Options: []string{
					"They are faster and calmer under pressure",
					"They impress observers",
					"They require no discipline",
					"They guarantee recovery",
				},
				CorrectAnswer: 0,
				Explanation:   "Under pressure we fall to the level of our preparation.",
			},
		},
	},
	{
		Number:  10,
		Title:   "Living Like a Winner",
		Summary: "Bringing the course together: the daily shape of a life lived LIKE a winner.",
		KeyLearnings: []string{
			"Winning as a manner, not a scoreboard",
			"The daily review",
			"Passing the wave on to others",
		},
		Questions: []Question{
			{
				ID:       1,
				Question: "What is 'living LIKE a winner' finally defined as?",
				Options: []string{
					"Accumulating victories",
					"A daily manner of riding the wave",
					"Avoiding all troughs",
					"Being recognised by others",
				},
				CorrectAnswer: 1,
				Explanation:   "It is a manner of travel, not a destination on the scoreboard.",
			},
			{
				ID:            2,
				Question:      "What closes each day in the winner's practice?",
				Options:       []string{"A daily review", "A reward", "A plan for tomorrow only", "Nothing in particular"},
				CorrectAnswer: 0,
				Explanation:   "The day ends with an honest account of where on the wave it was spent.",
			},
			{
				ID:       3,
				Question: "What is the final obligation of someone who has learned to ride the wave?",
				Options: []string{
					"To guard the method",
					"To pass it on to others",
					"To monetise it",
					"To retire from teaching",
				},
				CorrectAnswer: 1,
				Explanation:   "The course ends where teaching begins.",
			},
		},
	},
}
