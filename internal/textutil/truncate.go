// Package textutil provides small text helpers shared by the prompt
// builders.
package textutil

// DefaultMaxChars is the ceiling applied to CV and job-posting text before it
// is embedded into a prompt.
const DefaultMaxChars = 24000

// truncationMark replaces the removed middle of an over-long text. Kept in
// German to match the surrounding prompt language.
const truncationMark = "\n\n…(gekürzt)…\n\n"

// Truncate caps text at maxChars characters by keeping both ends and cutting
// the middle, so the opening (role, company) and the closing (contact,
// requirements recap) of a posting both survive. Cuts fall on rune
// boundaries; umlauts at either cut point stay intact. Text at or under the
// limit is returned unchanged.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	head := string(runes[:maxChars/2])
	tail := string(runes[len(runes)-maxChars/2:])
	return head + truncationMark + tail
}
