package config

import (
	"os"
	"path/filepath"
)

// GetFocadoHome returns FOCADO_HOME or ~/.focado default
func GetFocadoHome() string {
	focadoHome := os.Getenv("FOCADO_HOME")
	if focadoHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".focado"
		}
		return filepath.Join(homeDir, ".focado")
	}
	return ExpandPath(focadoHome)
}

// GetDBPath returns $FOCADO_HOME/history.db
func GetDBPath() string {
	return filepath.Join(GetFocadoHome(), "history.db")
}

// GetSettingsPath returns $FOCADO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFocadoHome(), "settings.json")
}

// GetSSHDir returns $FOCADO_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetFocadoHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
