package profile

// Relationship intents
const (
	IntentSerious    = "Serious relationship"
	IntentFling      = "Fling"
	IntentCasual     = "Casual date"
	IntentFriendship = "Friendship"
)

// Builtin returns the demo deck used when no deck file is given
// Image references resolve against the photo directory, unknown ones get placeholder art
func Builtin() []Profile {
	return []Profile{
		{
			ID: "1", Name: "Jessica Smith", Age: 28,
			Bio:       "Adventurous soul who loves trails and trying new cuisines. Looking for a partner for every hour.",
			ImageRefs: []string{"jessica-1.png", "jessica-2.png", "jessica-3.png"},
			Intent:    IntentSerious,
			Desires:   []string{"Wants to marry", "Wants children", "Travel", "Cooking", "Career growth"},
		},
		{
			ID: "2", Name: "Alex Johnson", Age: 31,
			Bio:       "Software engineer by day, musician by night. I can probably fix your computer and write you a song.",
			ImageRefs: []string{"alex-1.png", "alex-2.png"},
			Intent:    IntentFriendship,
			Desires:   []string{"Music", "Games", "Financial stability", "Buy a house"},
		},
		{
			ID: "3", Name: "Maria Garcia", Age: 26,
			Bio:       "Art gallery curator with a passion for painting and old films. Fluent in sarcasm and coffee.",
			ImageRefs: []string{"maria-1.png", "maria-2.png", "maria-3.png", "maria-4.png"},
			Intent:    IntentFling,
			Desires:   []string{"Art", "Films", "Reading", "Travel", "Own business"},
		},
		{
			ID: "4", Name: "David Lee", Age: 29,
			Bio:       "Fitness enthusiast and dog lover. My golden retriever is my best friend. Shall we run?",
			ImageRefs: []string{"david-1.png"},
			Intent:    IntentSerious,
			Desires:   []string{"Sports", "Nature", "Start a family", "Family ties"},
		},
		{
			ID: "5", Name: "Chloe Brown", Age: 24,
			Bio:       "Just a girl who loves to travel and document everything. My camera roll is 90% sunsets and food.",
			ImageRefs: []string{"chloe-1.png", "chloe-2.png", "chloe-3.png"},
			Intent:    IntentCasual,
			Desires:   []string{"Travel", "Art", "Photography", "No marriage", "No children"},
		},
		{
			ID: "6", Name: "Marcus Aurelius", Age: 35,
			Bio:       "Philosopher and aspiring stoic. Enjoys deep conversations, quiet mornings and a good book.",
			ImageRefs: []string{"marcus-1.png", "marcus-2.png"},
			Intent:    IntentSerious,
			Desires:   []string{"Reading", "Philosophy", "Wants to marry", "Wants children", "Start a family"},
		},
		{
			ID: "7", Name: "Sophia Chen", Age: 27,
			Bio:       "Passionate about sustainable living and loves trying vegan recipes. Always up for a good chat.",
			ImageRefs: []string{"sophia-1.png", "sophia-2.png"},
			Intent:    IntentFriendship,
			Desires:   []string{"Cooking", "Nature", "Student", "Financial stability"},
		},
		{
			ID: "8", Name: "Lucas Silva", Age: 30,
			Bio:       "Programmer and surfer, chasing waves and good company.",
			ImageRefs: []string{"lucas-1.png", "lucas-2.png"},
			Intent:    IntentFling,
			Desires:   []string{"Sports", "Nature", "Programming", "Travel"},
		},
	}
}
