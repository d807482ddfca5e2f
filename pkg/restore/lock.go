package restore

import (
	"errors"
	"strings"
	"syscall"
)

// isLockError reports whether a write failed because another process
// holds the target exclusively. Unix surfaces this as EBUSY/ETXTBSY;
// Windows wraps a sharing violation whose errno varies by Go version, so
// the message is checked as a fallback.
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.ETXTBSY) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "sharing violation") ||
		strings.Contains(msg, "resource busy")
}
