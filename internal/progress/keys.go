package progress

import "strings"

const (
	DefaultKeyPrefix   = "desert-foxes-progress-"
	DefaultFallbackKey = "desert-foxes-study-progress"
)

// StorageKey folds the username into prefix. With no identity the shared
// fallback key is used.
func StorageKey(prefix, fallback, username string, ok bool) string {
	if !ok || username == "" {
		return fallback
	}
	return prefix + strings.ToLower(username)
}
