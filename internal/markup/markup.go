// Package markup renders the restricted article markup used by the content
// catalog into HTML. The grammar is deliberately small: ATX headings,
// paragraphs, unordered and ordered lists, blockquotes, fenced code blocks,
// pipe tables, horizontal rules, links, images, emphasis and inline code.
// Rendering is a single deterministic pass over lines with explicit block
// state, text content is HTML-escaped.
package markup

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	headingRe        = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	orderedItemRe    = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	tableSeparatorRe = regexp.MustCompile(`^:?-{3,}:?$`)
)

// Render converts markup source to HTML. It is a pure function, the empty
// string renders to the empty string.
func Render(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	var b strings.Builder
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			i++
		case strings.HasPrefix(trimmed, "```"):
			i = renderCodeBlock(&b, lines, i)
		case headingRe.MatchString(trimmed):
			renderHeading(&b, trimmed)
			i++
		case isRule(trimmed):
			b.WriteString("<hr>\n")
			i++
		case strings.HasPrefix(trimmed, ">"):
			i = renderBlockquote(&b, lines, i)
		case isTableRow(trimmed) && i+1 < len(lines) && isTableSeparator(strings.TrimSpace(lines[i+1])):
			i = renderTable(&b, lines, i)
		case isUnorderedItem(trimmed):
			i = renderList(&b, lines, i, "ul")
		case orderedItemRe.MatchString(trimmed):
			i = renderList(&b, lines, i, "ol")
		default:
			i = renderParagraph(&b, lines, i)
		}
	}
	return b.String()
}

func isRule(s string) bool {
	if len(s) < 3 {
		return false
	}
	c := s[0]
	if c != '-' && c != '*' {
		return false
	}
	for j := 1; j < len(s); j++ {
		if s[j] != c {
			return false
		}
	}
	return true
}

func isUnorderedItem(s string) bool {
	return strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ")
}

func isTableRow(s string) bool {
	return strings.HasPrefix(s, "|") && strings.Contains(s[1:], "|")
}

func isTableSeparator(s string) bool {
	if !isTableRow(s) {
		return false
	}
	for _, cell := range splitRow(s) {
		if !tableSeparatorRe.MatchString(cell) {
			return false
		}
	}
	return true
}

// isBlockStart reports whether a line opens a non-paragraph block,
// terminating paragraph accumulation.
func isBlockStart(s string) bool {
	return s == "" ||
		strings.HasPrefix(s, "```") ||
		headingRe.MatchString(s) ||
		isRule(s) ||
		strings.HasPrefix(s, ">") ||
		isTableRow(s) ||
		isUnorderedItem(s) ||
		orderedItemRe.MatchString(s)
}

func renderHeading(b *strings.Builder, line string) {
	m := headingRe.FindStringSubmatch(line)
	level := strconv.Itoa(len(m[1]))
	b.WriteString("<h" + level + ">")
	b.WriteString(renderInline(m[2]))
	b.WriteString("</h" + level + ">\n")
}

func renderCodeBlock(b *strings.Builder, lines []string, i int) int {
	lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "```"))
	if lang != "" {
		fmt.Fprintf(b, "<pre><code class=\"language-%s\">", html.EscapeString(lang))
	} else {
		b.WriteString("<pre><code>")
	}
	i++
	for i < len(lines) && strings.TrimSpace(lines[i]) != "```" {
		b.WriteString(html.EscapeString(lines[i]))
		b.WriteString("\n")
		i++
	}
	b.WriteString("</code></pre>\n")
	if i < len(lines) {
		i++ // consume the closing fence
	}
	return i
}

func renderBlockquote(b *strings.Builder, lines []string, i int) int {
	var quoted []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		inner := strings.TrimPrefix(trimmed, ">")
		inner = strings.TrimPrefix(inner, " ")
		quoted = append(quoted, inner)
		i++
	}

	b.WriteString("<blockquote>")
	var para []string
	flush := func() {
		if len(para) > 0 {
			b.WriteString("<p>" + renderInline(strings.Join(para, " ")) + "</p>")
			para = nil
		}
	}
	for _, q := range quoted {
		if strings.TrimSpace(q) == "" {
			flush()
			continue
		}
		para = append(para, q)
	}
	flush()
	b.WriteString("</blockquote>\n")
	return i
}

func splitRow(s string) []string {
	s = strings.Trim(s, "|")
	cells := strings.Split(s, "|")
	for j := range cells {
		cells[j] = strings.TrimSpace(cells[j])
	}
	return cells
}

func renderTable(b *strings.Builder, lines []string, i int) int {
	header := splitRow(strings.TrimSpace(lines[i]))
	i += 2 // header + separator

	b.WriteString("<table>\n<thead>\n<tr>")
	for _, cell := range header {
		b.WriteString("<th>" + renderInline(cell) + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !isTableRow(trimmed) {
			break
		}
		b.WriteString("<tr>")
		for _, cell := range splitRow(trimmed) {
			b.WriteString("<td>" + renderInline(cell) + "</td>")
		}
		b.WriteString("</tr>\n")
		i++
	}
	b.WriteString("</tbody>\n</table>\n")
	return i
}

func renderList(b *strings.Builder, lines []string, i int, tag string) int {
	b.WriteString("<" + tag + ">\n")
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		var item string
		if tag == "ul" && isUnorderedItem(trimmed) {
			item = trimmed[2:]
		} else if m := orderedItemRe.FindStringSubmatch(trimmed); tag == "ol" && m != nil {
			item = m[1]
		} else {
			break
		}
		b.WriteString("<li>" + renderInline(item) + "</li>\n")
		i++
	}
	b.WriteString("</" + tag + ">\n")
	return i
}

func renderParagraph(b *strings.Builder, lines []string, i int) int {
	var para []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if len(para) > 0 && isBlockStart(trimmed) {
			break
		}
		if trimmed == "" {
			break
		}
		para = append(para, trimmed)
		i++
	}
	b.WriteString("<p>" + renderInline(strings.Join(para, " ")) + "</p>\n")
	return i
}

// renderInline scans a single line of text, emitting inline code, emphasis,
// links and images. Unmatched delimiters fall through as literal text.
func renderInline(s string) string {
	var b strings.Builder
	var plain strings.Builder
	flush := func() {
		b.WriteString(html.EscapeString(plain.String()))
		plain.Reset()
	}

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				flush()
				b.WriteString("<code>" + html.EscapeString(s[i+1:i+1+end]) + "</code>")
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "**"):
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				flush()
				b.WriteString("<strong>" + renderInline(s[i+2:i+2+end]) + "</strong>")
				i += end + 4
				continue
			}
		case s[i] == '*':
			if end := strings.IndexByte(s[i+1:], '*'); end > 0 {
				flush()
				b.WriteString("<em>" + renderInline(s[i+1:i+1+end]) + "</em>")
				i += end + 2
				continue
			}
		case strings.HasPrefix(s[i:], "!["):
			if alt, url, n := parseLinkTarget(s[i+1:]); n > 0 {
				flush()
				b.WriteString(`<img src="` + html.EscapeString(url) + `" alt="` + html.EscapeString(alt) + `">`)
				i += 1 + n
				continue
			}
		case s[i] == '[':
			if text, url, n := parseLinkTarget(s[i:]); n > 0 {
				flush()
				b.WriteString(`<a href="` + html.EscapeString(url) + `">` + renderInline(text) + "</a>")
				i += n
				continue
			}
		}
		plain.WriteByte(s[i])
		i++
	}
	flush()
	return b.String()
}

// parseLinkTarget parses "[text](url)" at the start of s, returning the
// text, the url and the number of bytes consumed. n is zero when s does not
// open a well-formed link target.
func parseLinkTarget(s string) (text, url string, n int) {
	if len(s) == 0 || s[0] != '[' {
		return "", "", 0
	}
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", 0
	}
	return s[1:closeBracket], s[closeBracket+2 : closeBracket+2+closeParen], closeBracket + closeParen + 3
}
