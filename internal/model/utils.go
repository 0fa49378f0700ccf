package model

// TruncateString caps a string at maxLength bytes so varchar columns never
// overflow on insert.
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength]
}
