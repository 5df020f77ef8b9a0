package suggest

import "journal_server/core/domain"

// Evidence-based coping strategies keyed by normalized emotion and life domain.
var suggestionsDatabase = map[string]map[domain.LifeDomain][]string{
	"anxiety": {
		domain.DomainWork: {
			"Break down your tasks into smaller, manageable steps",
			"Practice the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you hear, 3 you can touch, 2 you smell, 1 you taste",
			"Take a 10-minute walk to clear your mind and reset",
			"Write down your worries and challenge them with evidence",
			"Use the Pomodoro technique: 25 minutes focused work, 5 minutes break",
		},
		domain.DomainRelationships: {
			"Communicate your feelings using 'I' statements",
			"Take deep breaths before responding in difficult conversations",
			"Write down what you want to say before the conversation",
			"Remember: you can only control your own actions, not others' reactions",
			"Consider if this worry will matter in 5 years",
		},
		domain.DomainGeneral: {
			"Practice box breathing: inhale 4 counts, hold 4, exhale 4, hold 4",
			"Progressive muscle relaxation: tense and release each muscle group",
			"Listen to calming music or nature sounds",
			"Limit caffeine and stay hydrated",
			"Journal your thoughts to externalize worries",
		},
		domain.DomainHealth: {
			"Focus on what you can control right now",
			"Reach out to a healthcare professional if concerns persist",
			"Practice gentle movement like stretching or yoga",
			"Avoid excessive health-related internet searches",
			"Connect with supportive friends or family",
		},
	},
	"sadness": {
		domain.DomainGeneral: {
			"Allow yourself to feel - emotions are valid and temporary",
			"Reach out to a trusted friend or family member",
			"Engage in a small act of self-care (shower, favorite meal, cozy space)",
			"Get outside for 15 minutes - sunlight and fresh air help",
			"Write about what you're feeling without judgment",
		},
		domain.DomainRelationships: {
			"Remember that healing takes time",
			"Focus on connections that bring you comfort",
			"It's okay to set boundaries while you process",
			"Consider writing a letter (you don't have to send it)",
			"Seek support from a counselor if feelings persist",
		},
		domain.DomainWork: {
			"Take a mental health day if possible",
			"Talk to your supervisor about workload if overwhelmed",
			"Celebrate small wins, even tiny ones",
			"Connect with supportive colleagues",
			"Remember: your worth isn't defined by productivity",
		},
	},
	"anger": {
		domain.DomainGeneral: {
			"Take a timeout before responding - count to 10 slowly",
			"Physical activity can help release tension (walk, exercise)",
			"Write down what's bothering you, then tear it up",
			"Practice the STOP technique: Stop, Take a breath, Observe, Proceed mindfully",
			"Ask yourself: Will this matter in a week? A month? A year?",
		},
		domain.DomainRelationships: {
			"Use 'I feel' statements instead of 'You always/never'",
			"Take a break if the conversation gets too heated",
			"Focus on the specific issue, not the person",
			"Listen to understand, not just to respond",
			"Consider if there's hurt or fear underneath the anger",
		},
		domain.DomainWork: {
			"Step away from the situation if possible",
			"Document facts objectively if it's a workplace issue",
			"Channel energy into problem-solving rather than blame",
			"Talk to HR or a supervisor if it's a serious concern",
			"Practice assertive (not aggressive) communication",
		},
	},
	"joy": {
		domain.DomainGeneral: {
			"Savor this moment - take a mental snapshot",
			"Share your joy with someone you care about",
			"Write down what made you happy to revisit later",
			"Express gratitude for the good things",
			"Use this positive energy for something creative or productive",
		},
	},
	"fear": {
		domain.DomainGeneral: {
			"Ground yourself in the present moment",
			"Ask: What's the worst that could happen? How would I handle it?",
			"Break down the fear into specific, manageable concerns",
			"Talk to someone you trust about what scares you",
			"Remember times you've overcome challenges before",
		},
	},
	"neutral": {
		domain.DomainGeneral: {
			"Use this calm moment for reflection or planning",
			"Practice gratitude - list 3 things you're thankful for",
			"Set a small, achievable goal for today",
			"Check in with yourself: What do you need right now?",
			"Engage in a mindful activity (tea, walk, music)",
		},
	},
}

var intensityModifiers = map[domain.EmotionIntensity][]string{
	domain.IntensityMild: {
		"This is a good time for gentle self-reflection",
		"Consider journaling to explore these feelings",
		"A short walk or stretch might help",
	},
	domain.IntensityModerate: {
		"It's important to address these feelings",
		"Consider talking to someone you trust",
		"Take some time for self-care today",
	},
	domain.IntensityIntense: {
		"Please prioritize your wellbeing right now",
		"Consider reaching out to a mental health professional",
		"If you're in crisis, contact a crisis helpline immediately",
		"You don't have to face this alone - support is available",
	},
}

// CrisisResources is shown whenever intense distress is detected.
const CrisisResources = `
If you're experiencing a mental health crisis:
• National Suicide Prevention Lifeline: 988 (US)
• Crisis Text Line: Text HOME to 741741
• International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/
`

// Classifier labels mapped onto the coping-strategy taxonomy. Anything
// unmapped falls through to neutral.
var emotionTaxonomy = map[string]string{
	"happy":   "joy",
	"joy":     "joy",
	"sad":     "sadness",
	"sadness": "sadness",
	"angry":   "anger",
	"anger":   "anger",
	"anxious": "anxiety",
	"anxiety": "anxiety",
	"fear":    "fear",
	"afraid":  "fear",
	"neutral": "neutral",
}

var domainWorkKeywords = []string{"work", "job", "boss", "colleague", "office", "career", "project", "deadline", "meeting", "presentation"}
var domainRelationshipKeywords = []string{"relationship", "partner", "spouse", "friend", "family", "love", "breakup", "argument", "lonely"}
var domainHealthKeywords = []string{"health", "sick", "pain", "doctor", "medical", "illness", "body", "physical"}
