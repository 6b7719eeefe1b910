package model

// Question is a single interview question/answer record.
// Questions are immutable once loaded; ID is their identity.
type Question struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Columns lists the deck columns every source must provide, in canonical order.
var Columns = []string{"ID", "Category", "Question", "Answer"}
