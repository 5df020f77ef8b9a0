package wellness

import "journal_server/core/domain"

var quotesByEmotion = map[string][]domain.Quote{
	"anxiety": {
		{Text: "You are braver than you believe, stronger than you seem, and smarter than you think.", Author: "A.A. Milne"},
		{Text: "Worrying does not take away tomorrow's troubles. It takes away today's peace.", Author: "Randy Armstrong"},
		{Text: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman"},
		{Text: "Anxiety is a thin stream of fear trickling through the mind. If encouraged, it cuts a channel into which all other thoughts are drained.", Author: "Arthur Somers Roche"},
		{Text: "Nothing diminishes anxiety faster than action.", Author: "Walter Anderson"},
		{Text: "You wouldn't worry so much about what others think of you if you realized how seldom they do.", Author: "Eleanor Roosevelt"},
		{Text: "The greatest weapon against stress is our ability to choose one thought over another.", Author: "William James"},
		{Text: "Calm mind brings inner strength and self-confidence.", Author: "Dalai Lama"},
		{Text: "You are not your anxiety. You are the sky, and anxiety is just the weather.", Author: "Unknown"},
		{Text: "Breathe. It's just a bad day, not a bad life.", Author: "Unknown"},
	},
	"sadness": {
		{Text: "The wound is the place where the Light enters you.", Author: "Rumi"},
		{Text: "Every day may not be good, but there's something good in every day.", Author: "Alice Morse Earle"},
		{Text: "You are allowed to be both a masterpiece and a work in progress simultaneously.", Author: "Sophia Bush"},
		{Text: "The sun will rise and we will try again.", Author: "Twenty One Pilots"},
		{Text: "It's okay to not be okay, as long as you are not giving up.", Author: "Unknown"},
		{Text: "Stars can't shine without darkness.", Author: "Unknown"},
		{Text: "Your current situation is not your final destination.", Author: "Unknown"},
		{Text: "Healing doesn't mean the damage never existed. It means the damage no longer controls our lives.", Author: "Akshay Dubey"},
		{Text: "You've survived 100% of your worst days. You're doing great.", Author: "Unknown"},
		{Text: "Sometimes the bravest thing you can do is ask for help.", Author: "Unknown"},
	},
	"anger": {
		{Text: "For every minute you remain angry, you give up sixty seconds of peace of mind.", Author: "Ralph Waldo Emerson"},
		{Text: "Holding onto anger is like drinking poison and expecting the other person to die.", Author: "Buddha"},
		{Text: "Speak when you are angry and you will make the best speech you will ever regret.", Author: "Ambrose Bierce"},
		{Text: "The best fighter is never angry.", Author: "Lao Tzu"},
		{Text: "Anger is an acid that can do more harm to the vessel in which it is stored than to anything on which it is poured.", Author: "Mark Twain"},
		{Text: "When anger rises, think of the consequences.", Author: "Confucius"},
		{Text: "You will not be punished for your anger, you will be punished by your anger.", Author: "Buddha"},
		{Text: "Anger makes you smaller, while forgiveness forces you to grow beyond what you were.", Author: "Cherie Carter-Scott"},
	},
	"fear": {
		{Text: "Fear is only as deep as the mind allows.", Author: "Japanese Proverb"},
		{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
		{Text: "Courage is not the absence of fear, but rather the assessment that something else is more important than fear.", Author: "Franklin D. Roosevelt"},
		{Text: "Do the thing you fear and the death of fear is certain.", Author: "Ralph Waldo Emerson"},
		{Text: "Fear is a reaction. Courage is a decision.", Author: "Winston Churchill"},
		{Text: "The cave you fear to enter holds the treasure you seek.", Author: "Joseph Campbell"},
		{Text: "Feel the fear and do it anyway.", Author: "Susan Jeffers"},
	},
	"joy": {
		{Text: "Happiness is not by chance, but by choice.", Author: "Jim Rohn"},
		{Text: "The most wasted of days is one without laughter.", Author: "E.E. Cummings"},
		{Text: "Joy is what happens when we allow ourselves to recognize how good things really are.", Author: "Marianne Williamson"},
		{Text: "Gratitude turns what we have into enough.", Author: "Aesop"},
		{Text: "The purpose of our lives is to be happy.", Author: "Dalai Lama"},
		{Text: "Happiness is letting go of what you think your life is supposed to look like.", Author: "Unknown"},
		{Text: "Collect moments, not things.", Author: "Unknown"},
	},
	"neutral": {
		{Text: "Be yourself; everyone else is already taken.", Author: "Oscar Wilde"},
		{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
		{Text: "Life is 10% what happens to you and 90% how you react to it.", Author: "Charles R. Swindoll"},
		{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
		{Text: "You miss 100% of the shots you don't take.", Author: "Wayne Gretzky"},
	},
}

var bookRecommendations = map[string][]domain.Book{
	"anxiety": {
		{Title: "The Anxiety Toolkit", Author: "Alice Boyes", Type: "Self-Help", Description: "Practical strategies to overcome worry and anxiety", Summary: "This book provides clinical tools to manage anxiety in daily life. Key takeaways include: 1) Identifying your anxiety triggers, 2) Breaking the cycle of rumination, 3) Using cognitive behavioral therapy (CBT) techniques to challenge anxious thoughts, and 4) Learning to tolerate uncertainty.", Link: "https://www.amazon.com/s?k=The+Anxiety+Toolkit+Alice+Boyes"},
		{Title: "Dare: The New Way to End Anxiety", Author: "Barry McDonagh", Type: "Self-Help", Description: "A proven method to overcome panic attacks and anxiety", Summary: "The 'DARE' response stands for: Defuse (don't fight the feeling), Allow (accept the anxiety), Run Toward (tell yourself you're excited), and Engage (focus on something else). This method helps disarm the brain's alarm system.", Link: "https://www.amazon.com/s?k=Dare+The+New+Way+to+End+Anxiety"},
		{Title: "The Worry Trick", Author: "David Carbonell", Type: "Self-Help", Description: "How your brain tricks you into expecting the worst", Summary: "Explains how the more you try to stop worrying, the more you worry. Suggests 'worry appointments' (scheduling time to worry) and distinguishing between productive worry (solving problems) and unproductive worry (what-ifs).", Link: "https://www.amazon.com/s?k=The+Worry+Trick+David+Carbonell"},
		{Title: "The Midnight Library", Author: "Matt Haig", Type: "Fiction", Description: "A beautiful story about life choices and possibilities", Summary: "A novel about a woman who finds a library between life and death where each book represents a different life she could have lived. It explores regrets, the meaning of happiness, and the realization that the 'perfect' life doesn't exist.", Link: "https://www.amazon.com/s?k=The+Midnight+Library+Matt+Haig"},
	},
	"sadness": {
		{Title: "The Upward Spiral", Author: "Alex Korb", Type: "Self-Help", Description: "Using neuroscience to reverse the course of depression", Summary: "Explains the neuroscience of depression and offers small, practical steps to create an 'upward spiral'. Tips include: getting sunlight, exercising, practicing gratitude, and making decisions to reduce anxiety.", Link: "https://www.amazon.com/s?k=The+Upward+Spiral+Alex+Korb"},
		{Title: "Lost Connections", Author: "Johann Hari", Type: "Self-Help", Description: "Uncovering the real causes of depression and solutions", Summary: "Argues that depression is often caused by disconnection from meaningful work, other people, nature, and status. Suggests reconnecting with community and finding purpose as a path to healing.", Link: "https://www.amazon.com/s?k=Lost+Connections+Johann+Hari"},
		{Title: "The Gifts of Imperfection", Author: "Brené Brown", Type: "Self-Help", Description: "Let go of who you think you're supposed to be", Summary: "Encourages embracing vulnerability and imperfection. Key concepts include 'wholehearted living', cultivating self-compassion, and letting go of the need for approval and perfectionism.", Link: "https://www.amazon.com/s?k=The+Gifts+of+Imperfection+Brene+Brown"},
		{Title: "The Alchemist", Author: "Paulo Coelho", Type: "Fiction", Description: "An inspiring tale about following your dreams", Summary: "A fable about a shepherd boy who travels to Egypt to find a treasure. The core message is to listen to your heart, recognize omens, and follow your 'Personal Legend' (your life's purpose).", Link: "https://www.amazon.com/s?k=The+Alchemist+Paulo+Coelho"},
	},
	"anger": {
		{Title: "The Cow in the Parking Lot", Author: "Leonard Scheff", Type: "Self-Help", Description: "A Zen approach to overcoming anger", Summary: "Uses the metaphor of a cow taking your parking spot: you wouldn't be angry at a cow, so why be angry at a person? Teaches how to detach from anger and respond with patience.", Link: "https://www.amazon.com/s?k=The+Cow+in+the+Parking+Lot"},
		{Title: "Anger: Wisdom for Cooling the Flames", Author: "Thich Nhat Hanh", Type: "Self-Help", Description: "Buddhist wisdom on transforming anger", Summary: "Teaches mindfulness techniques to cool the flames of anger. Suggests treating anger like a crying baby that needs care and attention, rather than suppression or explosion.", Link: "https://www.amazon.com/s?k=Anger+Wisdom+for+Cooling+the+Flames"},
		{Title: "The Dance of Anger", Author: "Harriet Lerner", Type: "Self-Help", Description: "A woman's guide to changing patterns of intimate relationships", Summary: "Focuses on how anger can be a signal that something is wrong in a relationship. Encourages using anger as a tool for change by communicating clearly and setting boundaries without being aggressive.", Link: "https://www.amazon.com/s?k=The+Dance+of+Anger+Harriet+Lerner"},
	},
	"fear": {
		{Title: "Feel the Fear and Do It Anyway", Author: "Susan Jeffers", Type: "Self-Help", Description: "Dynamic techniques for turning fear into power", Summary: "Argues that fear is a natural part of growth. The only way to get rid of the fear of doing something is to go out and do it. Encourages moving from a place of pain (helplessness) to power (choice).", Link: "https://www.amazon.com/s?k=Feel+the+Fear+and+Do+It+Anyway"},
		{Title: "The Courage to Be Disliked", Author: "Ichiro Kishimi", Type: "Self-Help", Description: "How to free yourself and change your life", Summary: "Based on Adlerian psychology, this dialogue explores how our past doesn't determine our future. It argues that happiness comes from the courage to be disliked by others and living true to oneself.", Link: "https://www.amazon.com/s?k=The+Courage+to+Be+Disliked"},
		{Title: "Daring Greatly", Author: "Brené Brown", Type: "Self-Help", Description: "How the courage to be vulnerable transforms the way we live", Summary: "Explores how vulnerability is not weakness but our greatest measure of courage. Discusses how shame holds us back and how embracing vulnerability leads to creativity, connection, and joy.", Link: "https://www.amazon.com/s?k=Daring+Greatly+Brene+Brown"},
	},
	"general": {
		{Title: "Atomic Habits", Author: "James Clear", Type: "Self-Help", Description: "Tiny changes, remarkable results", Summary: "Focuses on how small, consistent habits lead to massive results over time. Introduces the '4 Laws of Behavior Change': Make it Obvious, Make it Attractive, Make it Easy, and Make it Satisfying.", Link: "https://www.amazon.com/s?k=Atomic+Habits+James+Clear"},
		{Title: "The Happiness Project", Author: "Gretchen Rubin", Type: "Self-Help", Description: "One woman's year-long quest for happiness", Summary: "The author spends a year test-driving wisdom about happiness. Key takeaways: 'act the way you want to feel', 'do good to feel good', and the importance of relationships and energy.", Link: "https://www.amazon.com/s?k=The+Happiness+Project+Gretchen+Rubin"},
		{Title: "Man's Search for Meaning", Author: "Viktor Frankl", Type: "Philosophy", Description: "Finding purpose in life's challenges", Summary: "Written by a Holocaust survivor, this book argues that we cannot avoid suffering but we can choose how to cope with it and find meaning in it. 'He who has a why to live can bear almost any how.'", Link: "https://www.amazon.com/s?k=Mans+Search+for+Meaning+Viktor+Frankl"},
		{Title: "The Power of Now", Author: "Eckhart Tolle", Type: "Spirituality", Description: "A guide to spiritual enlightenment", Summary: "Emphasizes the importance of living in the present moment. Argues that most human pain is caused by identifying with the mind (past regrets or future worries) rather than the 'Now'.", Link: "https://www.amazon.com/s?k=The+Power+of+Now+Eckhart+Tolle"},
	},
}

var inspirationalStories = map[string]domain.Story{
	"anxiety": {
		Title: "The Starfish Story",
		Content: `A young girl was walking along a beach where thousands of starfish had been washed ashore.

She began picking them up one by one and throwing them back into the ocean. An old man approached her and said, "Why are you doing this? There are thousands of starfish. You can't possibly make a difference."

The girl picked up another starfish, threw it into the ocean, and replied, "I made a difference to that one."

**Lesson**: You don't have to solve everything at once. Every small action matters. Focus on what you can control right now.`,
	},
	"sadness": {
		Title: "The Cracked Pot",
		Content: `A water bearer had two large pots. One was perfect, the other had a crack. Every day, the perfect pot delivered a full portion of water, while the cracked pot arrived only half full.

For two years this went on. The cracked pot was ashamed of its imperfection. One day it spoke to the water bearer: "I am ashamed of myself, and I want to apologize to you."

"Why?" asked the bearer. "What are you ashamed of?"

"I have been able to deliver only half my load because this crack in my side causes water to leak out all the way back."

The bearer smiled. "Did you notice that there were flowers only on your side of the path, but not on the other pot's side? That's because I have always known about your flaw, and I took advantage of it. I planted flower seeds on your side of the path, and every day while we walk back, you've watered them."

**Lesson**: Our flaws and imperfections can create beauty. What you see as weakness might be your greatest strength.`,
	},
	"anger": {
		Title: "The Two Wolves",
		Content: `An old Cherokee told his grandson about a battle that goes on inside people.

"My son, the battle is between two wolves inside us all. One is Evil - it is anger, envy, jealousy, sorrow, regret, greed, arrogance, self-pity, guilt, resentment, inferiority, lies, false pride, superiority, and ego.

The other is Good - it is joy, peace, love, hope, serenity, humility, kindness, benevolence, empathy, generosity, truth, compassion, and faith."

The grandson thought about it for a minute and then asked his grandfather, "Which wolf wins?"

The old Cherokee simply replied, "The one you feed."

**Lesson**: You have the power to choose which emotions to nurture. Feed peace, not anger.`,
	},
}

const defaultActivity = "grounding_5_4_3_2_1"

var guidedActivities = map[string]domain.Activity{
	"grounding_5_4_3_2_1": {
		Name:     "5-4-3-2-1 Grounding Exercise",
		Duration: "3-5 minutes",
		Steps: []string{
			"**5 things you can SEE**: Look around and name 5 things you can see right now",
			"**4 things you can TOUCH**: Notice 4 things you can physically feel (your feet on the floor, your back against the chair, etc.)",
			"**3 things you can HEAR**: Listen carefully and identify 3 sounds",
			"**2 things you can SMELL**: Notice 2 scents (or think of 2 favorite smells)",
			"**1 thing you can TASTE**: Focus on one taste in your mouth, or think of your favorite flavor",
		},
		Benefit: "Brings you back to the present moment and reduces anxiety",
	},
	"box_breathing": {
		Name:     "Box Breathing (4-4-4-4)",
		Duration: "2-5 minutes",
		Steps: []string{
			"**Breathe IN** through your nose for 4 counts",
			"**HOLD** your breath for 4 counts",
			"**Breathe OUT** through your mouth for 4 counts",
			"**HOLD** empty for 4 counts",
			"**Repeat** 4-5 times or until you feel calmer",
		},
		Benefit: "Calms the nervous system and reduces stress",
	},
	"progressive_relaxation": {
		Name:     "Progressive Muscle Relaxation",
		Duration: "10-15 minutes",
		Steps: []string{
			"Find a comfortable position, sitting or lying down",
			"**Feet**: Curl your toes tightly for 5 seconds, then release",
			"**Legs**: Tense your leg muscles for 5 seconds, then release",
			"**Stomach**: Tighten your abdominal muscles, then release",
			"**Hands**: Make fists for 5 seconds, then release",
			"**Arms**: Tense your arm muscles, then release",
			"**Shoulders**: Raise shoulders to ears, hold, then drop",
			"**Face**: Scrunch your face tight, then relax",
			"**Whole body**: Notice the difference between tension and relaxation",
		},
		Benefit: "Releases physical tension and promotes deep relaxation",
	},
}

var crisisDirectory = domain.CrisisDirectory{
	Helplines: []domain.Helpline{
		{Name: "National Suicide Prevention Lifeline (US)", Number: "988", Available: "24/7"},
		{Name: "Crisis Text Line (US)", Number: "Text HOME to 741741", Available: "24/7"},
		{Name: "SAMHSA National Helpline", Number: "1-800-662-4357", Available: "24/7"},
	},
	Apps: []domain.AppResource{
		{Name: "Calm", Description: "Meditation and sleep stories"},
		{Name: "Headspace", Description: "Mindfulness and meditation"},
		{Name: "Sanvello", Description: "Mood tracking and CBT tools"},
		{Name: "Wysa", Description: "AI mental health support"},
	},
	Websites: []domain.WebResource{
		{Name: "BetterHelp", URL: "https://www.betterhelp.com", Description: "Online therapy platform"},
		{Name: "7 Cups", URL: "https://www.7cups.com", Description: "Free emotional support"},
		{Name: "MentalHealth.gov", URL: "https://www.mentalhealth.gov", Description: "Government mental health resources"},
	},
}
