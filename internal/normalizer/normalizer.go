// Package normalizer implements the text normalization and sanitization
// pipeline that rewrites free-form input text into a canonical, fully
// speakable string for downstream phoneme conversion.
//
// The pipeline is a fixed, order-sensitive sequence of pattern-driven
// rewrite passes. Specific-format passes (URL, email, phone, time, money,
// unit) run before the generic number pass so their digits are never
// prematurely expanded into plain cardinals. All compiled patterns and
// lookup tables are built once and read concurrently without locking.
package normalizer

import (
	"regexp"
	"sort"
	"strings"
)

// Match patterns for the rewrite passes. Several patterns carry a captured
// boundary prefix that the handler re-emits, standing in for the lookbehind
// assertions RE2 does not support. The money and number patterns extend the
// same trick to the sign: a hyphen only counts as "minus" when it follows a
// boundary, so ranges like "5-10" keep both numbers. The phone pattern
// requires at least one separator or a parenthesized area code so bare
// digit runs fall through to the generic number pass.
const (
	urlPatternText = `(^|[\s([{'"<])((?:https?://|www\.)\S+` +
		`|(?:[a-zA-Z0-9][a-zA-Z0-9-]*\.)+(?:com|org|net|edu|gov|io|co|ai|dev|me|info)(?::\d+)?(?:/\S*)?` +
		`|localhost(?::\d+)(?:/\S*)?)`
	emailPatternText = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`
	phonePatternText = `(^|[^0-9$£€¥])(?:\+?(\d{1,2})[-. ]?)?` +
		`(?:\((\d{3})\)[-. ]?|(\d{3})[-. ])(\d{3})[-. ](\d{4})\b`
	timePatternText  = `\b(\d{1,2}):(\d{2})(?::(\d{2}))?( ?(?:[ap]m|[AP]M))?\b`
	moneyPatternText = `((?:^|[\s([{'"<])-)?([$£€¥])(\d+(?:,\d{3})*(?:\.\d+)?)` +
		`(?:\s?([kKmMbBtT]|thousand|million|billion|trillion)\b)?`
	numberPatternText        = `((?:^|[\s([{'"<])-)?(\d+(?:,\d{3})*)((?:\.\d+)?)((?:[kKmMbBtT])?)\b`
	pluralizationPatternText = `\(s\)`
	nonNewlineSpacePattern   = `[^\S\n]+`
)

// Options selects which passes run for one normalization call. The value is
// immutable for the lifetime of the call; nothing is shared between calls.
type Options struct {
	// Normalize is the master switch: when false no pass runs and the
	// input is returned with only surrounding whitespace trimmed.
	Normalize               bool
	NormalizeURLs           bool
	NormalizeEmails         bool
	NormalizeUnits          bool
	NormalizePhones         bool
	OptionalPluralization   bool
	ReplaceRemainingSymbols bool
}

// DefaultOptions returns the standard switches: everything on except unit
// normalization.
func DefaultOptions() Options {
	return Options{
		Normalize:               true,
		NormalizeURLs:           true,
		NormalizeEmails:         true,
		NormalizeUnits:          false,
		NormalizePhones:         true,
		OptionalPluralization:   true,
		ReplaceRemainingSymbols: true,
	}
}

// passKind tags one rewrite stage. The set is closed: every stage the
// pipeline can run is named here, and the ordered pass list in New is the
// single place the succession is declared.
type passKind int

const (
	passURL passKind = iota
	passEmail
	passPhone
	passTime
	passMoney
	passUnit
	passNumber
	passPluralization
	passSymbol
	passQuote
	passCJK
	passAbbreviation
	passWhitespace
)

// pass is one named rewrite stage: a transform over the current text and
// the option gate that enables it.
type pass struct {
	kind    passKind
	name    string
	enabled func(Options) bool
	apply   func(string) string
}

// Normalizer holds the compiled patterns, replacers, and the ordered pass
// list. A single Normalizer serves unlimited concurrent calls.
type Normalizer struct {
	urlPattern           *regexp.Regexp
	emailPattern         *regexp.Regexp
	phonePattern         *regexp.Regexp
	timePattern          *regexp.Regexp
	moneyPattern         *regexp.Regexp
	unitPattern          *regexp.Regexp
	numberPattern        *regexp.Regexp
	pluralizationPattern *regexp.Regexp
	titleAbbrevPattern   *regexp.Regexp
	plainAbbrevPattern   *regexp.Regexp
	spacePattern         *regexp.Regexp

	symbolReplacer *strings.Replacer
	quoteReplacer  *strings.Replacer
	cjkReplacer    *strings.Replacer

	passes []pass
}

// New compiles every pattern and assembles the fixed pass sequence.
func New() *Normalizer {
	normalizer := &Normalizer{
		urlPattern:           regexp.MustCompile(urlPatternText),
		emailPattern:         regexp.MustCompile(emailPatternText),
		phonePattern:         regexp.MustCompile(phonePatternText),
		timePattern:          regexp.MustCompile(timePatternText),
		moneyPattern:         regexp.MustCompile(moneyPatternText),
		unitPattern:          regexp.MustCompile(`(\d+(?:\.\d+)?) ?(` + tableAlternation(unitKeys()) + `)\b`),
		numberPattern:        regexp.MustCompile(numberPatternText),
		pluralizationPattern: regexp.MustCompile(pluralizationPatternText),
		titleAbbrevPattern: regexp.MustCompile(
			`\b(` + tableAlternation(stringMapKeys(titleAbbreviationTable)) + `)\.\s+([A-Z])`),
		plainAbbrevPattern: regexp.MustCompile(
			`\b(` + tableAlternation(stringMapKeys(plainAbbreviationTable)) + `)\.`),
		spacePattern: regexp.MustCompile(nonNewlineSpacePattern),

		symbolReplacer: buildSymbolReplacer(),
		quoteReplacer:  buildQuoteReplacer(),
		cjkReplacer:    buildCJKReplacer(),

		passes: nil,
	}

	always := func(Options) bool { return true }

	// The stage order below is the core correctness invariant of the
	// pipeline and must not be rearranged.
	normalizer.passes = []pass{
		{
			kind:    passURL,
			name:    "url",
			enabled: func(opts Options) bool { return opts.NormalizeURLs },
			apply: func(text string) string {
				return normalizer.urlPattern.ReplaceAllStringFunc(text, normalizer.rewriteURL)
			},
		},
		{
			kind:    passEmail,
			name:    "email",
			enabled: func(opts Options) bool { return opts.NormalizeEmails },
			apply: func(text string) string {
				return normalizer.emailPattern.ReplaceAllStringFunc(text, normalizer.rewriteEmail)
			},
		},
		{
			kind:    passPhone,
			name:    "phone",
			enabled: func(opts Options) bool { return opts.NormalizePhones },
			apply: func(text string) string {
				return normalizer.phonePattern.ReplaceAllStringFunc(text, normalizer.rewritePhone)
			},
		},
		{
			kind:    passTime,
			name:    "time",
			enabled: always,
			apply: func(text string) string {
				return normalizer.timePattern.ReplaceAllStringFunc(text, normalizer.rewriteTime)
			},
		},
		{
			kind:    passMoney,
			name:    "money",
			enabled: always,
			apply: func(text string) string {
				return normalizer.moneyPattern.ReplaceAllStringFunc(text, normalizer.rewriteMoney)
			},
		},
		{
			kind:    passUnit,
			name:    "unit",
			enabled: func(opts Options) bool { return opts.NormalizeUnits },
			apply: func(text string) string {
				return normalizer.unitPattern.ReplaceAllStringFunc(text, normalizer.rewriteUnit)
			},
		},
		{
			kind:    passNumber,
			name:    "number",
			enabled: always,
			apply: func(text string) string {
				return normalizer.numberPattern.ReplaceAllStringFunc(text, normalizer.rewriteNumber)
			},
		},
		{
			kind:    passPluralization,
			name:    "pluralization",
			enabled: func(opts Options) bool { return opts.OptionalPluralization },
			apply: func(text string) string {
				return normalizer.pluralizationPattern.ReplaceAllLiteralString(text, "s")
			},
		},
		{
			kind:    passSymbol,
			name:    "symbol",
			enabled: func(opts Options) bool { return opts.ReplaceRemainingSymbols },
			apply: func(text string) string {
				return normalizer.symbolReplacer.Replace(text)
			},
		},
		{
			kind:    passQuote,
			name:    "quote",
			enabled: always,
			apply: func(text string) string {
				return normalizer.quoteReplacer.Replace(text)
			},
		},
		{
			kind:    passCJK,
			name:    "cjk",
			enabled: always,
			apply: func(text string) string {
				return normalizer.cjkReplacer.Replace(text)
			},
		},
		{
			kind:    passAbbreviation,
			name:    "abbreviation",
			enabled: always,
			apply:   normalizer.expandAbbreviations,
		},
		{
			kind:    passWhitespace,
			name:    "whitespace",
			enabled: always,
			apply:   normalizer.collapseWhitespace,
		},
	}

	return normalizer
}

// Normalize applies the enabled passes in their fixed order and returns the
// speakable text. When the master switch is off, only surrounding
// whitespace is trimmed.
func (n *Normalizer) Normalize(text string, opts Options) string {
	if !opts.Normalize {
		return strings.TrimSpace(text)
	}

	for _, stage := range n.passes {
		if !stage.enabled(opts) {
			continue
		}

		text = stage.apply(text)
	}

	return text
}

// unitKeys returns the unit table keys for pattern construction.
func unitKeys() []string {
	keys := make([]string, 0, len(unitTable))
	for key := range unitTable {
		keys = append(keys, key)
	}

	return keys
}

// stringMapKeys returns the keys of a string-valued table.
func stringMapKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	return keys
}

// tableAlternation builds a deterministic regex alternation from table
// keys, longest first so "km/h" wins over "km".
func tableAlternation(keys []string) string {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for index, key := range keys {
		quoted[index] = regexp.QuoteMeta(key)
	}

	return strings.Join(quoted, "|")
}
