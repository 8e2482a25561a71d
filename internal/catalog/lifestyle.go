package catalog

import "github.com/jivana-app/jivana/internal/models"

// LifestyleTips is the built-in lifestyle practice table.
var LifestyleTips = []models.LifestylePractice{
	{
		Category:    "Mindfulness",
		Title:       "Practice Mindful Breathing",
		Description: "Take 5-10 minutes each day to focus solely on your breath. Notice the sensation of air entering and leaving your body.",
		Benefits:    []string{"Reduces stress", "Improves focus", "Promotes relaxation"},
	},
	{
		Category:    "Physical Activity",
		Title:       "Go for a Daily Walk",
		Description: "Even a short 20-30 minute walk outdoors can significantly boost your mood and energy levels.",
		Benefits:    []string{"Boosts mood", "Increases energy", "Improves cardiovascular health"},
	},
	{
		Category:    "Digital Detox",
		Title:       "Implement Screen-Free Time",
		Description: "Designate specific periods each day (e.g., an hour before bed) where you avoid all screens.",
		Benefits:    []string{"Improves sleep quality", "Reduces eye strain", "Encourages real-world interaction"},
	},
	{
		Category:    "Nutrition",
		Title:       "Hydrate Regularly",
		Description: "Drink plenty of water throughout the day. Keep a water bottle handy as a reminder.",
		Benefits:    []string{"Boosts metabolism", "Improves skin health", "Supports organ function"},
	},
	{
		Category:    "Sleep",
		Title:       "Establish a Consistent Sleep Schedule",
		Description: "Go to bed and wake up at the same time each day, even on weekends, to regulate your body's natural clock.",
		Benefits:    []string{"Improves energy levels", "Enhances cognitive function", "Strengthens immune system"},
	},
	{
		Category:    "Social Connection",
		Title:       "Connect with Loved Ones",
		Description: "Spend quality time with friends and family, whether in person or virtually. Strong social ties are crucial for well-being.",
		Benefits:    []string{"Reduces feelings of loneliness", "Boosts happiness", "Provides emotional support"},
	},
	{
		Category:    "Learning",
		Title:       "Read for Pleasure",
		Description: "Dedicate time each day to reading a book, article, or anything that sparks your curiosity and expands your knowledge.",
		Benefits:    []string{"Reduces stress", "Improves vocabulary", "Enhances empathy"},
	},
	{
		Category:    "Nature",
		Title:       "Spend Time Outdoors",
		Description: "Connect with nature by taking a walk in a park, gardening, or simply sitting outside and observing your surroundings.",
		Benefits:    []string{"Reduces stress", "Improves mood", "Boosts creativity"},
	},
}

// LifestyleCategories is the category taxonomy used both for display and as
// a constraint in content refresh prompts.
var LifestyleCategories = []string{
	"Mindfulness",
	"Physical Activity",
	"Digital Detox",
	"Nutrition",
	"Sleep",
	"Social Connection",
	"Learning",
	"Nature",
}
