package constants

const (
	// New user defaults
	DefaultPhase     = "phase1_week1"
	DefaultCityName  = "Moscow"
	DefaultLatitude  = 55.7558
	DefaultLongitude = 37.6173
	DefaultTimezone  = "Europe/Moscow"

	// Environment keys
	EnvDatabase         = "NYKHA_DB"
	EnvDBConnection     = "NYKHA_DB_CONNECTION"
	EnvDebug            = "NYKHA_DEBUG"
	EnvHTTPAddr         = "NYKHA_HTTP_ADDR"
	EnvSweepAt          = "NYKHA_SWEEP_AT"
	EnvDBTimeoutSeconds = "NYKHA_DB_TIMEOUT"
	EnvBackupKeep       = "NYKHA_BACKUP_KEEP"
	EnvDefaultPhase     = "DEFAULT_PHASE"
	EnvDefaultCity      = "DEFAULT_CITY_NAME"
	EnvDefaultLatitude  = "DEFAULT_LATITUDE"
	EnvDefaultLongitude = "DEFAULT_LONGITUDE"
	EnvDefaultTimezone  = "DEFAULT_TIMEZONE"
)
