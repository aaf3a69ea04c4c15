package output

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path of the rotating log file.
// GITFLOW_LOG_FILE overrides the default ~/.gitflow/logs/gitflow.log;
// setting it to "off" disables file logging.
func GetLogFilePath() string {
	if customPath := os.Getenv("GITFLOW_LOG_FILE"); customPath != "" {
		if customPath == "off" {
			return ""
		}
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitflow.log"
	}

	return filepath.Join(homeDir, ".gitflow", "logs", "gitflow.log")
}
