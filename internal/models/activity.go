package models

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
)

// Category is one of the fixed daily practice types a user can mark done.
type Category string

const (
	CategoryMindfulness Category = "mindfulness"
	CategoryNature      Category = "nature"
	CategoryService     Category = "service"
)

var categories = []Category{CategoryMindfulness, CategoryNature, CategoryService}

var categoryEmoji = map[Category]string{
	CategoryMindfulness: "🧘",
	CategoryNature:      "🌳",
	CategoryService:     "🤝",
}

var categoryNames = map[Category]string{
	CategoryMindfulness: "Осознанность",
	CategoryNature:      "Природа",
	CategoryService:     "Служение",
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory validates s against the fixed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCategory, s)
}

// Valid reports whether c belongs to the fixed set.
func (c Category) Valid() bool {
	_, ok := categoryEmoji[c]
	return ok
}

func (c Category) Emoji() string {
	if e, ok := categoryEmoji[c]; ok {
		return e
	}
	return "❓"
}

func (c Category) DisplayName() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return string(c)
}

func (c Category) String() string { return string(c) }

// ActivityRecord is the completion of one category by one user on one day.
// At most one exists per (UserID, Day, Category).
type ActivityRecord struct {
	ID        int64     `db:"activity_id" json:"id"`
	UserID    UserID    `db:"user_id" json:"user_id"`
	Day       string    `db:"activity_date" json:"day"` // YYYY-MM-DD format
	Category  Category  `db:"category" json:"category"`
	Completed bool      `db:"completed" json:"completed"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TodayStatus maps every category to whether it was completed today.
type TodayStatus map[Category]bool

// NewTodayStatus returns a status with every category present and false.
func NewTodayStatus() TodayStatus {
	s := make(TodayStatus, len(categories))
	for _, c := range categories {
		s[c] = false
	}
	return s
}

// CategoryCounts maps every category to a completion count.
type CategoryCounts map[Category]int

// NewCategoryCounts returns counts with every category present and zero.
func NewCategoryCounts() CategoryCounts {
	m := make(CategoryCounts, len(categories))
	for _, c := range categories {
		m[c] = 0
	}
	return m
}

// Total sums all category counts.
func (m CategoryCounts) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
