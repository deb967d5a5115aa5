package matcher

// Truncate implements the match/title truncation policy: once text
// reaches width, keep a prefix and a suffix joined by "...", budgeting 9
// characters total for the ellipsis and its padding.
//
// Truncate(t, w) for w < 9 returns t unchanged -- the budget calculation
// below is only meaningful once there's room for the ellipsis itself.
func Truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) < width || width < 9 {
		return text
	}

	budget := width - 9
	head := budget / 2      // floor((width-9)/2)
	tail := budget - head   // ceil((width-9)/2)

	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
