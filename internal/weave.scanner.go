package internal

import (
	"strings"
	"unicode"
)

// blockFamily describes one family of block tags: an opening keyword that
// takes arguments, an optional separator and a closing keyword.
type blockFamily struct {
	open      string
	separator string
	close     string
}

var (
	loopFamily        = blockFamily{open: KeywordFor, separator: KeywordEmpty, close: KeywordEndFor}
	conditionalFamily = blockFamily{open: KeywordIf, separator: KeywordElse, close: KeywordEndIf}
)

// tagRole is the role a #{...} tag plays within a family.
type tagRole int

const (
	roleNone tagRole = iota
	roleOpen
	roleSeparator
	roleClose
)

// block is a matched top-level block with its clauses.
type block struct {
	Start     int    // offset of the opening "#{"
	End       int    // offset just past the closing tag
	HeaderEnd int    // offset just past the opening tag
	Args      string // text after the opening keyword, trimmed
	Body      string // content before the separator (or the whole content)
	Alt       string // content after the separator
	HasAlt    bool
}

// scanResult holds the blocks found at depth zero plus the opening tags
// that were never closed.
type scanResult struct {
	Blocks   []block
	Unclosed []string
}

// readTag reads a "#{...}" tag starting at i, counting nested braces so a
// "${}" token inside the tag does not end it.
func readTag(s string, i int) (inner string, end int, ok bool) {
	depth := 0
	for j := i + len(StrBlockOpen) - 1; j < len(s); j++ {
		switch s[j] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
			if depth == 0 {
				return s[i+len(StrBlockOpen) : j], j + 1, true
			}
		}
	}
	return StringValueEmpty, 0, false
}

// classify returns the role of a tag's inner text and, for opening tags,
// the argument text.
func (f blockFamily) classify(inner string) (tagRole, string) {
	trimmed := strings.TrimSpace(inner)
	switch trimmed {
	case f.separator:
		return roleSeparator, StringValueEmpty
	case f.close:
		return roleClose, StringValueEmpty
	}
	if strings.HasPrefix(trimmed, f.open) {
		rest := trimmed[len(f.open):]
		if rest == "" {
			return roleOpen, StringValueEmpty
		}
		if r := rune(rest[0]); unicode.IsSpace(r) || r == CharNegate {
			return roleOpen, strings.TrimSpace(rest)
		}
	}
	return roleNone, StringValueEmpty
}

// nextTag finds the next tag of the family at or after pos.
func (f blockFamily) nextTag(s string, pos int) (role tagRole, args string, start, end int) {
	for pos < len(s) {
		idx := strings.Index(s[pos:], StrBlockOpen)
		if idx < 0 {
			return roleNone, StringValueEmpty, -1, -1
		}
		start = pos + idx
		inner, tagEnd, ok := readTag(s, start)
		if ok {
			if role, args := f.classify(inner); role != roleNone {
				return role, args, start, tagEnd
			}
		}
		pos = start + len(StrBlockOpen)
	}
	return roleNone, StringValueEmpty, -1, -1
}

// match pairs the opening tag at [start, headerEnd) with its closing tag,
// tracking depth so same-family blocks nest correctly. The first separator
// at depth one splits the content.
func (f blockFamily) match(s string, start, headerEnd int, args string) (block, bool) {
	depth := 1
	sepStart, sepEnd := -1, -1
	pos := headerEnd
	for {
		role, _, tagStart, tagEnd := f.nextTag(s, pos)
		if tagStart < 0 {
			return block{}, false
		}
		switch role {
		case roleOpen:
			depth++
		case roleSeparator:
			if depth == 1 && sepStart < 0 {
				sepStart, sepEnd = tagStart, tagEnd
			}
		case roleClose:
			depth--
			if depth == 0 {
				b := block{
					Start:     start,
					End:       tagEnd,
					HeaderEnd: headerEnd,
					Args:      args,
				}
				if sepStart >= 0 {
					b.Body = s[headerEnd:sepStart]
					b.Alt = s[sepEnd:tagStart]
					b.HasAlt = true
				} else {
					b.Body = s[headerEnd:tagStart]
				}
				return b, true
			}
		}
		pos = tagEnd
	}
}

// scan finds every top-level block of the family in s. An opening tag
// without a closing tag is reported and scanning resumes right after it,
// so well-formed blocks inside it are still found.
func (f blockFamily) scan(s string) scanResult {
	var result scanResult
	pos := 0
	for pos < len(s) {
		role, args, start, end := f.nextTag(s, pos)
		if start < 0 {
			break
		}
		if role != roleOpen {
			// stray separator or closing tag stays verbatim
			pos = end
			continue
		}
		b, ok := f.match(s, start, end, args)
		if !ok {
			result.Unclosed = append(result.Unclosed, s[start:end])
			pos = end
			continue
		}
		result.Blocks = append(result.Blocks, b)
		pos = b.End
	}
	return result
}
