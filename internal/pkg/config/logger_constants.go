package config

// Log levels accepted by LoggerSettings.LogLevel
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log output types accepted by LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
