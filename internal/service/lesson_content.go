package service

import "github.com/msomdec/dagligsvensk/internal/domain"

const (
	listenTitle   = "Lytt og lær"
	practiceTitle = "Øv deg"
)

// lessonContent holds the scripted lesson for every scenario that has one.
var lessonContent = map[domain.Scenario][]domain.LessonStep{
	domain.ScenarioShopping: {
		domain.IntroStep{Title: "I butikken", Text: "Today we will practice useful phrases when you are shopping."},
		domain.ListenStep{
			Title:       listenTitle,
			Phrase:      "Jag skulle vilja ha en kaffe, tack.",
			Translation: "I would like a coffee, please.",
			Explanation: "Use “Jag skulle vilja ha…” when ordering something politely.",
		},
		domain.QuizStep{
			Question:     "How do you ask for the price in Swedish?",
			AudioPhrase:  "Hur mycket kostar det?",
			Options:      []string{"Hur mycket kostar det?", "Hur många kostar det?", "Vad kostar det?", "Hur kostar det?"},
			CorrectIndex: 0,
		},
		domain.PracticeStep{
			Title:       practiceTitle,
			Phrase:      "Kan jag betala med kort?",
			Translation: "Can I pay by card?",
			Explanation: "Handy question to confirm payment options.",
		},
		domain.QuizStep{
			Question: "What does “Tack så mycket” mean?",
			Options:  []string{"Thank you very much", "Here you go", "Hi", "Goodbye"},
		},
	},
	domain.ScenarioWork: {
		domain.IntroStep{Title: "På jobben", Text: "Let’s practice common phrases you use at work."},
		domain.ListenStep{
			Title:       listenTitle,
			Phrase:      "Jag kan börja klockan åtta.",
			Translation: "I can start at eight o’clock.",
			Explanation: "Use “klockan” to talk about clock time.",
		},
		domain.QuizStep{
			Question:    "How do you ask someone to explain again?",
			AudioPhrase: "Kan du förklara igen?",
			Options:     []string{"Kan du förklara igen?", "Kan du förklara nu?", "Kan du förklara mer?", "Kan du hjälpa mig?"},
		},
		domain.PracticeStep{
			Title:       practiceTitle,
			Phrase:      "Jag behöver hjälp med detta.",
			Translation: "I need help with this.",
			Explanation: "“Behöver” means “need” in Swedish.",
		},
		domain.QuizStep{
			Question: "What does “möte” mean in English?",
			Options:  []string{"Meeting", "Food", "Goal", "Morning"},
		},
	},
	domain.ScenarioTravel: {
		domain.IntroStep{Title: "På reise", Text: "Phrases you need on buses, trains, and flights."},
		domain.ListenStep{
			Title:       listenTitle,
			Phrase:      "Var går den här bussen?",
			Translation: "Where does this bus go?",
			Explanation: "Use this to double-check the route.",
		},
		domain.QuizStep{
			Question:    "How do you ask when the train leaves?",
			AudioPhrase: "När går tåget?",
			Options:     []string{"När går tåget?", "Var går tåget?", "Hur går tåget?", "Vem går tåget?"},
		},
		domain.PracticeStep{
			Title:       practiceTitle,
			Phrase:      "Jag behöver köpa en biljett.",
			Translation: "I need to buy a ticket.",
			Explanation: "Useful at the ticket office.",
		},
		domain.QuizStep{
			Question: "What does “försenad” mean?",
			Options:  []string{"Delayed", "Early", "Fully booked", "Free"},
		},
	},
	domain.ScenarioFood: {
		domain.IntroStep{Title: "Mat og servering", Text: "Phrases for cafés and restaurants."},
		domain.ListenStep{
			Title:       listenTitle,
			Phrase:      "Kan jag få menyn, tack?",
			Translation: "Can I have the menu, please?",
			Explanation: "Polite way to ask for the menu.",
		},
		domain.QuizStep{
			Question: "How do you ask for the bill?",
			Options:  []string{"Kan jag få notan?", "Kan jag få stolen?", "Kan jag få boken?", "Kan jag få gaffeln?"},
		},
		domain.PracticeStep{
			Title:       practiceTitle,
			Phrase:      "Jag är allergisk mot nötter.",
			Translation: "I am allergic to nuts.",
			Explanation: "Important to mention allergies.",
		},
		domain.QuizStep{
			Question: "What does “dricks” mean?",
			Options:  []string{"Tip", "Drink", "Plate", "Bill"},
		},
	},
	domain.ScenarioHousing: {
		domain.IntroStep{Title: "Bolig og utleie", Text: "Words and phrases when you are looking for housing."},
		domain.ListenStep{
			Title:       listenTitle,
			Phrase:      "Finns det tvättmaskin i lägenheten?",
			Translation: "Is there a washing machine in the apartment?",
			Explanation: "Common question during a viewing.",
		},
		domain.QuizStep{
			Question: "How do you ask if electricity is included?",
			Options:  []string{"Ingår el i hyran?", "Har du el?", "Är el dyr?", "Var är elen?"},
		},
		domain.PracticeStep{
			Title:       practiceTitle,
			Phrase:      "Jag vill boka en visning.",
			Translation: "I would like to book a viewing.",
			Explanation: "Use this to set up a viewing time.",
		},
		domain.QuizStep{
			Question: "What does “hyra” mean?",
			Options:  []string{"Rent", "House", "Elevator", "Garden"},
		},
	},
	domain.ScenarioSurvival: {
		domain.IntroStep{Title: "Survival Basics", Text: "Essential phrases for greetings, directions, and quick help."},
		domain.ListenStep{
			Title:       "Greetings",
			Phrase:      "Hej! Hur mår du?",
			Translation: "Hi! How are you?",
			Explanation: "Standard friendly greeting.",
		},
		domain.QuizStep{
			Question: "How do you say “Thank you” in Swedish?",
			Options:  []string{"Tack", "Varsågod", "Hej", "Snälla"},
		},
		domain.ListenStep{
			Title:       "Getting help",
			Phrase:      "Kan du hjälpa mig?",
			Translation: "Can you help me?",
			Explanation: "Use when you need assistance.",
		},
		domain.PracticeStep{
			Title:       "Directions",
			Phrase:      "Var är toaletten?",
			Translation: "Where is the restroom?",
			Explanation: "Useful in public places.",
		},
		domain.QuizStep{
			Question: "What does “ursäkta” mean?",
			Options:  []string{"Excuse me", "Please", "Thank you", "Good night"},
		},
		domain.ListenStep{
			Title:       "Numbers",
			Phrase:      "Jag vill ha två kaffe, tack.",
			Translation: "I would like two coffees, please.",
			Explanation: "Practice counting in real requests.",
		},
		domain.PracticeStep{
			Title:       "Emergency",
			Phrase:      "Ring ambulans!",
			Translation: "Call an ambulance!",
			Explanation: "Emergency phrase to know by heart.",
		},
		domain.QuizStep{
			Question: "How do you ask “Do you speak English?”",
			Options:  []string{"Talar du engelska?", "Är du engelska?", "Var är engelska?", "Har du engelska?"},
		},
		domain.ListenStep{
			Title:       "Time",
			Phrase:      "Vad är klockan?",
			Translation: "What time is it?",
			Explanation: "Use for quick time checks.",
		},
		domain.PracticeStep{
			Title:       "Polite close",
			Phrase:      "Trevlig dag!",
			Translation: "Have a nice day!",
			Explanation: "Great way to end a short interaction.",
		},
		domain.QuizStep{
			Question: "What does “jag förstår inte” mean?",
			Options:  []string{"I do not understand", "I do not agree", "I am not hungry", "I will be late"},
		},
	},
}
