package presentation

// MaskEmail keeps the first two characters of the local part:
// "accounting@lull.local" → "ac***@lull.local".
func MaskEmail(email string) string {
	runes := []rune(email)
	atIdx := -1
	for i, r := range runes {
		if r == '@' {
			atIdx = i
			break
		}
	}
	if atIdx <= 0 {
		return "***"
	}
	prefix := runes[:atIdx]
	domain := string(runes[atIdx:])
	if len(prefix) <= 2 {
		return string(prefix) + "***" + domain
	}
	return string(prefix[:2]) + "***" + domain
}
