package domain

// SceneTip describes one study scenario with example inputs and keyword hints
type SceneTip struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Examples []string `json:"examples"`
	Keywords []string `json:"keywords"`
}

// SceneTips is the fixed set of built-in study scenarios.
var SceneTips = []SceneTip{
	{
		Name:  "daily",
		Title: "Everyday conversation",
		Examples: []string{
			"I would like some fruit",
			"The weather is nice today",
			"Thank you for your help",
			"Goodbye, see you next time",
		},
		Keywords: []string{"greetings", "thanks", "small talk"},
	},
	{
		Name:  "work",
		Title: "Workplace communication",
		Examples: []string{
			"The meeting moved to 3 PM",
			"Here is the project status report",
			"Please review this document",
			"Looking forward to your reply",
		},
		Keywords: []string{"email", "meetings", "reports"},
	},
	{
		Name:  "study",
		Title: "Study and campus",
		Examples: []string{
			"How do I solve this problem",
			"Can you tutor me in English",
			"Where is the library",
			"When is the exam",
		},
		Keywords: []string{"questions", "asking for help", "campus"},
	},
	{
		Name:  "shopping",
		Title: "Shopping and spending",
		Examples: []string{
			"How much is this jacket",
			"Can I try it on",
			"I would like a refund",
			"Is there a discount",
		},
		Keywords: []string{"prices", "fitting", "payment"},
	},
	{
		Name:  "travel",
		Title: "Travel and getting around",
		Examples: []string{
			"How do I get to the nearest station",
			"I would like to book a room for tomorrow",
			"What local food do you recommend",
			"How long does it take to the airport",
		},
		Keywords: []string{"directions", "booking", "transport"},
	},
}

// SceneTipByName looks up a built-in scene. Unknown names get an empty tip
// carrying the requested name, so arbitrary category labels still render.
func SceneTipByName(name string) SceneTip {
	for _, s := range SceneTips {
		if s.Name == name {
			return s
		}
	}
	return SceneTip{Name: name, Title: name, Examples: []string{}, Keywords: []string{}}
}
