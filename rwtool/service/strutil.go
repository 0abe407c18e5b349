package service

// previewString shortens str to at most maxLen characters for list output,
// appending a "..." suffix when truncated. Rune-safe: prompts often contain
// multi-byte padding tokens.
func previewString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen || maxLen < 3 {
		return str
	}
	return string(runes[:maxLen-3]) + "..."
}
