package config

import (
	"os"
	"path/filepath"
)

const (
	userConfigDirName = ".config/extframe"
	sharedConfigDir   = "/etc/extframe"
)

// UserConfigDir returns the per-user search location (§4.1), honoring
// $HOME the same way the teacher's original config path lookup did.
func UserConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDirName), nil
}

// SharedConfigDir returns the deployment-wide search location (§4.1).
// It is a fixed path, not derived from the environment, so operators can
// rely on it across hosts.
func SharedConfigDir() string {
	return sharedConfigDir
}
