package constants

import "os"

func getEnv(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func GetAddr() string {
	return getEnv("TRANSPOSER_ADDR", DefaultAddr)
}

func GetConfigPath() string {
	return getEnv("TRANSPOSER_CONFIG", DefaultConfigPath)
}

func GetLogLevel() string {
	return getEnv("TRANSPOSER_LOG_LEVEL", DefaultLogLevel)
}

const (
	DefaultAddr       = ":8080"
	DefaultConfigPath = "./transposer.yaml"
	DefaultLogLevel   = "info"
)

// time to wait after the last write before re-transposing a watched file
const WatchDebounceMillis = 200

const HistoryFileName = ".transposer_history"
