package models

// ActivitySummary is the raw tally a store returns for a date range.
// Distinct counts days for a single user and users for the whole group.
type ActivitySummary struct {
	Distinct   int
	ByCategory CategoryCounts
}

// UserWeeklyStats covers the trailing seven days, today inclusive.
type UserWeeklyStats struct {
	DaysActive     int            `json:"days_active"`
	DiaryEntries   int            `json:"diary_entries"`
	TasksDoneTotal int            `json:"tasks_done_total"`
	CategoriesDone CategoryCounts `json:"categories_done"`
	Streak         int            `json:"streak"`
}

// GroupWeeklyStats covers the same window across all users.
type GroupWeeklyStats struct {
	TotalUsersActive int            `json:"total_users_active"`
	TotalTasksDone   int            `json:"total_tasks_done"`
	CategoriesDone   CategoryCounts `json:"categories_done"`
}
