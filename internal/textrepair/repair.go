// Package textrepair fixes a list-formatting defect in exported message bodies.
//
// Exports sometimes place a bullet list directly under a bold, quoted,
// numbered label with no blank line between them. Many Markdown renderers
// then collapse the list into the label line. Repair inserts the missing
// blank line.
package textrepair

import "regexp"

// itemPattern matches a bold numbered label with a double-quoted title,
// immediately followed on the next line by a bullet marker.
var itemPattern = regexp.MustCompile(`\n\*\*(\d+)\. "([^"]+)"\*\*\n- `)

// Repair inserts a blank line between each bold numbered label and the
// bullet item that directly follows it. Text without the defect is
// returned unchanged, and the transform is idempotent: the inserted blank
// line breaks the adjacency the pattern requires.
func Repair(text string) string {
	if !itemPattern.MatchString(text) {
		return text
	}
	return itemPattern.ReplaceAllString(text, "\n**${1}. \"${2}\"**\n\n- ")
}
