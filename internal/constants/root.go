package constants

import "time"

const (
	AppName            = "nykha"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/nykha/nykha.db"
	Version            = "v1.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// WeeklyWindowDays is the length of the trailing stats window, today inclusive.
	WeeklyWindowDays = 7

	// ActivityRetentionDays is how many days of activity survive a sweep (today and yesterday).
	ActivityRetentionDays = 1

	// Sweep constants
	DefaultSweepAt     = "00:05"
	DaemonLockfileName = "nykha-daemon.lock"

	// Backup constants
	DefaultBackupKeep = 14

	// Diary constants
	DefaultDiaryLimit = 5
	MaxDiaryLimit     = 100

	// Store constants
	DefaultDBTimeout = 30 * time.Second

	// HTTP constants
	DefaultHTTPAddr       = ":8080"
	HTTPShutdownTimeout   = 5 * time.Second
	HTTPReadHeaderTimeout = 10 * time.Second
)
