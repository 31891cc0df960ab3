package markdown

import "strings"

// CRLF is the line separator used to join and prefix every generated line.
// Despite the name it is a single LF; generated text never contains "\r\n".
const CRLF = "\n"

// Heading returns an ATX heading. Levels outside 1..3 are clamped.
func Heading(level int, title string) string {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return strings.Repeat("#", level) + " " + title
}

func H1(title string) string { return Heading(1, title) }
func H2(title string) string { return Heading(2, title) }
func H3(title string) string { return Heading(3, title) }

// Fence wraps code in a fenced code block tagged with language. The code is
// emitted verbatim.
func Fence(language, code string) string {
	return "```" + language + CRLF + code + CRLF + "```"
}

// TS is a fenced TypeScript block, the language of every signature.
func TS(code string) string { return Fence("ts", code) }

// Code wraps s in backticks.
func Code(s string) string { return "`" + s + "`" }

// Link returns an inline link.
func Link(text, href string) string { return "[" + text + "](" + href + ")" }

// Italic wraps s in asterisks.
func Italic(s string) string { return "*" + s + "*" }
