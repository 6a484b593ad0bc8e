package models

import "time"

// DiaryEntry is an append-only private journal line.
type DiaryEntry struct {
	ID        int64     `db:"entry_id" json:"id"`
	UserID    UserID    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Text      string    `db:"entry_text" json:"text"`
}

// Mantra is a catalog affirmation. Text is unique across the catalog.
type Mantra struct {
	ID          int64   `db:"mantra_id" json:"id"`
	Category    string  `db:"category" json:"category"`
	Text        string  `db:"text_primary" json:"text"`
	Translation *string `db:"text_translation" json:"translation,omitempty"`
}

// Phase is one week of the habit plan a user moves through.
type Phase struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	DailyHabit string `json:"daily_habit"`
	MealHabit  string `json:"meal_habit"`
	Reflection string `json:"reflection"`
}
