package normalizer

import (
	"sort"
	"strings"
)

// Typographic characters normalized by the quote/bracket stage.
const (
	leftDoubleQuote  = "“"
	rightDoubleQuote = "”"
	lowDoubleQuote   = "„"
	leftGuillemet    = "«"
	rightGuillemet   = "»"
	leftSingleQuote  = "‘"
	rightSingleQuote = "’"
	lowSingleQuote   = "‚"
	leftAngleQuote   = "‹"
	rightAngleQuote  = "›"
	emDash           = "—"
	enDash           = "–"
	figureDash       = "‒"
	ellipsisChar     = "…"
)

// buildQuoteReplacer maps typographic quotes, guillemets, dashes, and the
// ellipsis character to their ASCII equivalents.
func buildQuoteReplacer() *strings.Replacer {
	return strings.NewReplacer(
		leftDoubleQuote, `"`,
		rightDoubleQuote, `"`,
		lowDoubleQuote, `"`,
		leftGuillemet, `"`,
		rightGuillemet, `"`,
		leftSingleQuote, "'",
		rightSingleQuote, "'",
		lowSingleQuote, "'",
		leftAngleQuote, "'",
		rightAngleQuote, "'",
		emDash, "-",
		enDash, "-",
		figureDash, "-",
		ellipsisChar, "...",
	)
}

// buildSymbolReplacer turns the symbol table into a replacer. Spoken words
// are padded with spaces; removals become a space. The later whitespace
// stage collapses the padding.
func buildSymbolReplacer() *strings.Replacer {
	keys := stringMapKeys(symbolTable)
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)

	for _, key := range keys {
		word := symbolTable[key]
		if word == "" {
			pairs = append(pairs, key, " ")
		} else {
			pairs = append(pairs, key, " "+word+" ")
		}
	}

	return strings.NewReplacer(pairs...)
}

// buildCJKReplacer turns the CJK punctuation table into a replacer. The
// table values already carry their Western spacing.
func buildCJKReplacer() *strings.Replacer {
	keys := stringMapKeys(cjkPunctuationTable)
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, cjkPunctuationTable[key])
	}

	return strings.NewReplacer(pairs...)
}

// expandAbbreviations expands title abbreviations when followed by a
// capitalized word, and the plain abbreviations unconditionally.
func (n *Normalizer) expandAbbreviations(text string) string {
	text = n.titleAbbrevPattern.ReplaceAllStringFunc(text, func(span string) string {
		match := n.titleAbbrevPattern.FindStringSubmatch(span)
		if match == nil {
			return span
		}

		expansion, known := titleAbbreviationTable[match[1]]
		if !known {
			return span
		}

		return expansion + " " + match[2]
	})

	return n.plainAbbrevPattern.ReplaceAllStringFunc(text, func(span string) string {
		match := n.plainAbbrevPattern.FindStringSubmatch(span)
		if match == nil {
			return span
		}

		expansion, known := plainAbbreviationTable[match[1]]
		if !known {
			return span
		}

		return expansion
	})
}

// collapseWhitespace normalizes line endings, collapses runs of non-newline
// whitespace to a single space, strips whitespace-only lines, converts the
// remaining newlines to spaces, and trims the result.
func (n *Normalizer) collapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = n.spacePattern.ReplaceAllString(text, " ")

	var kept []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, " ")
}
