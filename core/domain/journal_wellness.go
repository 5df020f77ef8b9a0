package domain

// Quote is a mood-keyed motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Book is a reading recommendation tied to an emotion.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
}

// Story is a short inspirational story.
type Story struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Activity is a guided wellness exercise.
type Activity struct {
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Steps    []string `json:"steps"`
	Benefit  string   `json:"benefit"`
}

// Helpline is a crisis phone or text line.
type Helpline struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	Available string `json:"available"`
}

// AppResource is a recommended mental-health app.
type AppResource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WebResource is an online support resource.
type WebResource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CrisisDirectory groups the crisis support resources served by the
// wellness endpoints.
type CrisisDirectory struct {
	Helplines []Helpline    `json:"helplines"`
	Apps      []AppResource `json:"apps"`
	Websites  []WebResource `json:"websites"`
}
