package libs

import "os"

// GetHome returns the home directory of the current user, or "." when it is unknown.
func GetHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
