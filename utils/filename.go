package utils

import (
	"fmt"
	"strings"
)

// SanitizeFilename strips whitespace and any character outside
// [A-Za-z0-9._-] from an uploaded file's original name.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AttachmentKey builds the storage key for one attachment. The report ID is
// fixed before any upload, so every object for a report shares one prefix.
// The part index keeps same-named files in one submission on distinct keys.
func AttachmentKey(userID, reportID string, timestamp int64, index int, filename string) string {
	return fmt.Sprintf("%s/%s/%d-%d-%s", userID, reportID, timestamp, index, SanitizeFilename(filename))
}

// AttachmentPrefix is the listing prefix for all of a report's attachments.
func AttachmentPrefix(userID, reportID string) string {
	return fmt.Sprintf("%s/%s/", userID, reportID)
}
