package normalizer

import (
	"strconv"
	"strings"
)

// Spoken words for URL structure characters.
const (
	wordDot          = " dot "
	wordSlash        = " slash "
	wordQuestionMark = " question-mark "
	wordEquals       = " equals "
	wordColon        = " colon "
	wordAnd          = " and "
	wordHash         = " hash "
	wordAt           = " at "
	wordMinus        = "minus "
)

// Scheme prefixes recognized by the URL handler.
const (
	schemeHTTPS = "https://"
	schemeHTTP  = "http://"
)

// urlTrailingPunctuation is stripped from a URL match and re-emitted
// verbatim so sentence punctuation is not read as part of the address.
const urlTrailingPunctuation = `.,;:!?)'"`

// Each handler below rewrites one validated match span into replacement
// text. Handlers are pure and total over their pattern's domain: a capture
// that fails a table lookup or exceeds the representable magnitude degrades
// to the original span instead of failing the pipeline.

// rewriteURL converts a URL span into speakable words: the protocol is read
// as a word, domain dots become "dot", path separators "slash", query
// characters their spoken names, and a port is read digit by digit.
func (n *Normalizer) rewriteURL(span string) string {
	match := n.urlPattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	prefix, address := match[1], match[2]

	trimmed := strings.TrimRight(address, urlTrailingPunctuation)
	trailing := address[len(trimmed):]

	return prefix + spokenURL(trimmed) + trailing
}

func spokenURL(address string) string {
	var builder strings.Builder

	rest := address

	switch {
	case strings.HasPrefix(rest, schemeHTTPS):
		builder.WriteString("https ")

		rest = strings.TrimPrefix(rest, schemeHTTPS)
	case strings.HasPrefix(rest, schemeHTTP):
		builder.WriteString("http ")

		rest = strings.TrimPrefix(rest, schemeHTTP)
	}

	host := rest
	tail := ""

	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		host, tail = rest[:end], rest[end:]
	}

	if colon := strings.LastIndex(host, ":"); colon >= 0 {
		port := host[colon+1:]
		host = host[:colon]

		builder.WriteString(strings.ReplaceAll(host, ".", wordDot))
		builder.WriteString(wordColon)
		builder.WriteString(digitWords(port))
	} else {
		builder.WriteString(strings.ReplaceAll(host, ".", wordDot))
	}

	for _, char := range tail {
		switch char {
		case '/':
			builder.WriteString(wordSlash)
		case '?':
			builder.WriteString(wordQuestionMark)
		case '=':
			builder.WriteString(wordEquals)
		case '&':
			builder.WriteString(wordAnd)
		case '#':
			builder.WriteString(wordHash)
		case '.':
			builder.WriteString(wordDot)
		default:
			builder.WriteRune(char)
		}
	}

	return strings.Join(strings.Fields(builder.String()), " ")
}

// rewriteEmail reads "@" as "at" and domain dots as "dot". Dots inside the
// local part are left verbatim.
func (n *Normalizer) rewriteEmail(span string) string {
	at := strings.LastIndex(span, "@")
	if at < 0 {
		return span
	}

	local, domain := span[:at], span[at+1:]

	return local + wordAt + strings.ReplaceAll(domain, ".", wordDot)
}

// rewritePhone reads every digit group individually, joining groups with a
// comma pause. An optional country code contributes its own leading group.
func (n *Normalizer) rewritePhone(span string) string {
	match := n.phonePattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	area := match[3]
	if area == "" {
		area = match[4]
	}

	groups := make([]string, 0, 4)
	if match[2] != "" {
		groups = append(groups, digitWords(match[2]))
	}

	groups = append(groups, digitWords(area), digitWords(match[5]), digitWords(match[6]))

	return match[1] + strings.Join(groups, ", ")
}

// rewriteTime reads the hour as a cardinal and the minutes per clock
// convention: "00" becomes "o'clock", "01"-"09" become "oh" plus the digit,
// anything else a plain cardinal. Seconds append "and N seconds" and an
// am/pm token passes through unchanged.
func (n *Normalizer) rewriteTime(span string) string {
	match := n.timePattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour >= numberBaseHundred {
		return span
	}

	var builder strings.Builder

	builder.WriteString(twoDigitWords(hour))

	minute := match[2]
	switch {
	case minute == "00":
		builder.WriteString(" o'clock")
	case minute[0] == '0':
		builder.WriteString(" oh ")
		builder.WriteString(onesWords[minute[1]-'0'])
	default:
		value, minuteErr := strconv.Atoi(minute)
		if minuteErr != nil {
			return span
		}

		builder.WriteString(" ")
		builder.WriteString(twoDigitWords(value))
	}

	if seconds := match[3]; seconds != "" && seconds != "00" {
		value, secondsErr := strconv.Atoi(seconds)
		if secondsErr != nil {
			return span
		}

		builder.WriteString(" and ")
		builder.WriteString(twoDigitWords(value))

		if value == 1 {
			builder.WriteString(" second")
		} else {
			builder.WriteString(" seconds")
		}
	}

	if meridiem := match[4]; meridiem != "" {
		builder.WriteString(" ")
		builder.WriteString(strings.TrimSpace(meridiem))
	}

	return builder.String()
}

// rewriteMoney converts a currency span. A multiplier suffix takes
// precedence over any fractional part ("$5.3k" reads as "five point three
// thousand dollars"); otherwise a decimal amount reads its first two
// fractional digits as cents, right-padded when only one digit is given.
func (n *Normalizer) rewriteMoney(span string) string {
	match := n.moneyPattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	sign, symbol, amount, suffix := match[1], match[2], match[3], match[4]

	entry, known := currencyTable[symbol]
	if !known {
		return span
	}

	// The sign capture includes the boundary character that qualified the
	// hyphen as a minus; re-emit it ahead of the word.
	prefix := ""
	if sign != "" {
		prefix = strings.TrimSuffix(sign, "-") + wordMinus
	}

	amount = strings.ReplaceAll(amount, ",", "")

	if suffix != "" {
		words, err := numberWords(amount, suffix)
		if err != nil {
			return span
		}

		return prefix + words + " " + entry.MajorPlural
	}

	integerPart, fractionPart, hasFraction := strings.Cut(amount, ".")

	integerWords, err := cardinalWords(integerPart)
	if err != nil {
		return span
	}

	major := entry.MajorPlural
	if strings.TrimLeft(integerPart, "0") == "1" {
		major = entry.MajorSingular
	}

	if !hasFraction || fractionPart == "" {
		return prefix + integerWords + " " + major
	}

	cents := fractionPart
	if len(cents) == 1 {
		cents += "0"
	}

	centsValue, err := strconv.Atoi(cents[:2])
	if err != nil {
		return span
	}

	if centsValue == 0 {
		return prefix + integerWords + " " + major
	}

	minor := entry.MinorPlural
	if centsValue == 1 {
		minor = entry.MinorSingular
	}

	return prefix + integerWords + " " + major + " and " +
		twoDigitWords(centsValue) + " " + minor
}

// rewriteUnit expands a measurement abbreviation to its spoken word,
// pluralized by the numeric value. Rate units keep their stored phrase.
func (n *Normalizer) rewriteUnit(span string) string {
	match := n.unitPattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	value, key := match[1], match[2]

	entry, known := unitTable[key]
	if !known {
		return span
	}

	words, err := plainNumberWords(value)
	if err != nil {
		return span
	}

	unit := entry.Plural
	if !entry.Rate && literalIsOne(value) {
		unit = entry.Singular
	}

	return words + " " + unit
}

// rewriteNumber delegates a bare numeric span to the cardinal converter.
// The sign capture carries its qualifying boundary character, which is
// re-emitted so a hyphen between two numbers is never read as "minus".
func (n *Normalizer) rewriteNumber(span string) string {
	match := n.numberPattern.FindStringSubmatch(span)
	if match == nil {
		return span
	}

	prefix := ""
	literal := match[2] + match[3]

	if sign := match[1]; sign != "" {
		prefix = strings.TrimSuffix(sign, "-")
		literal = "-" + literal
	}

	words, err := numberWords(literal, match[4])
	if err != nil {
		return span
	}

	return prefix + words
}

// literalIsOne reports whether a numeric literal denotes exactly one, the
// singular/plural boundary.
func literalIsOne(literal string) bool {
	value, err := strconv.ParseFloat(literal, 64)

	return err == nil && value == 1
}
