package components

import "time"

// Article is one service update shown on the demo page.
type Article struct {
	ID    string
	Title string
	Desc  string
	Theme string
	Date  time.Time
	// New marks updates published in the last month.
	New bool
}

// ArticleStore provides the articles behind the demo components. The
// main package implements it with an in-memory store.
type ArticleStore interface {
	// List returns the articles matching theme, newest first. An empty
	// theme returns everything.
	List(theme string) []Article
	// Themes returns the distinct themes in use, sorted.
	Themes() []string
}
