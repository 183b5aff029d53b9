package normalizer

// The lookup tables below are the configuration surface of the pipeline: a
// deploying engineer extends speech coverage by adding entries here without
// touching any pass logic. All tables are initialized once at process start
// and never mutated, so any number of concurrent calls may read them
// without locking.

// unitEntry describes how a measurement abbreviation is spoken. Rate units
// ("miles per hour") carry their own plural sense and are never pluralized
// by the numerator.
type unitEntry struct {
	Singular string
	Plural   string
	Rate     bool
}

// unitTable maps a unit abbreviation to its spoken words. Data units
// distinguish bit from byte by the case of the trailing letter.
var unitTable = map[string]unitEntry{
	// Length.
	"mm": {Singular: "millimeter", Plural: "millimeters", Rate: false},
	"cm": {Singular: "centimeter", Plural: "centimeters", Rate: false},
	"m":  {Singular: "meter", Plural: "meters", Rate: false},
	"km": {Singular: "kilometer", Plural: "kilometers", Rate: false},
	"mi": {Singular: "mile", Plural: "miles", Rate: false},
	"ft": {Singular: "foot", Plural: "feet", Rate: false},

	// Mass.
	"mg": {Singular: "milligram", Plural: "milligrams", Rate: false},
	"g":  {Singular: "gram", Plural: "grams", Rate: false},
	"kg": {Singular: "kilogram", Plural: "kilograms", Rate: false},
	"lb": {Singular: "pound", Plural: "pounds", Rate: false},
	"oz": {Singular: "ounce", Plural: "ounces", Rate: false},

	// Time.
	"ms": {Singular: "millisecond", Plural: "milliseconds", Rate: false},
	"s":  {Singular: "second", Plural: "seconds", Rate: false},
	"hr": {Singular: "hour", Plural: "hours", Rate: false},
	"h":  {Singular: "hour", Plural: "hours", Rate: false},

	// Data, bytes.
	"B":  {Singular: "byte", Plural: "bytes", Rate: false},
	"KB": {Singular: "kilobyte", Plural: "kilobytes", Rate: false},
	"MB": {Singular: "megabyte", Plural: "megabytes", Rate: false},
	"GB": {Singular: "gigabyte", Plural: "gigabytes", Rate: false},
	"TB": {Singular: "terabyte", Plural: "terabytes", Rate: false},

	// Data, bits.
	"b":  {Singular: "bit", Plural: "bits", Rate: false},
	"Kb": {Singular: "kilobit", Plural: "kilobits", Rate: false},
	"kb": {Singular: "kilobit", Plural: "kilobits", Rate: false},
	"Mb": {Singular: "megabit", Plural: "megabits", Rate: false},
	"Gb": {Singular: "gigabit", Plural: "gigabits", Rate: false},
	"Tb": {Singular: "terabit", Plural: "terabits", Rate: false},

	// Speed.
	"mph":  {Singular: "miles per hour", Plural: "miles per hour", Rate: true},
	"kph":  {Singular: "kilometers per hour", Plural: "kilometers per hour", Rate: true},
	"km/h": {Singular: "kilometers per hour", Plural: "kilometers per hour", Rate: true},
	"m/s":  {Singular: "meters per second", Plural: "meters per second", Rate: true},

	// Temperature.
	"°C": {Singular: "degree celsius", Plural: "degrees celsius", Rate: false},
	"°F": {Singular: "degree fahrenheit", Plural: "degrees fahrenheit", Rate: false},
}

// currencyEntry holds the spoken major and minor unit words for one
// currency symbol, in singular and plural forms.
type currencyEntry struct {
	MajorSingular string
	MajorPlural   string
	MinorSingular string
	MinorPlural   string
}

// currencyTable maps a currency symbol to its spoken units.
var currencyTable = map[string]currencyEntry{
	"$": {MajorSingular: "dollar", MajorPlural: "dollars", MinorSingular: "cent", MinorPlural: "cents"},
	"£": {MajorSingular: "pound", MajorPlural: "pounds", MinorSingular: "penny", MinorPlural: "pence"},
	"€": {MajorSingular: "euro", MajorPlural: "euros", MinorSingular: "cent", MinorPlural: "cents"},
	"¥": {MajorSingular: "yen", MajorPlural: "yen", MinorSingular: "sen", MinorPlural: "sen"},
}

// symbolTable maps leftover symbols to spoken words. An empty replacement
// removes the symbol entirely.
var symbolTable = map[string]string{
	"~":  "tilde",
	"@":  "at",
	"#":  "hash",
	"$":  "dollar",
	"%":  "percent",
	"^":  "caret",
	"&":  "and",
	"*":  "asterisk",
	"_":  "underscore",
	"|":  "",
	"\\": "",
	"/":  "slash",
	"=":  "equals",
	"+":  "plus",
}

// cjkPunctuationTable maps full-width CJK punctuation to its Western
// equivalent with a trailing space.
var cjkPunctuationTable = map[string]string{
	"、": ", ",
	"。": ". ",
	"，": ", ",
	"．": ". ",
	"！": "! ",
	"？": "? ",
	"：": ": ",
	"；": "; ",
	"（": " (",
	"）": ") ",
	"「": " \"",
	"」": "\" ",
	"『": " \"",
	"』": "\" ",
	"《": " \"",
	"》": "\" ",
	"・": " ",
	"～": " ",
}

// titleAbbreviationTable maps a title abbreviation (without its period) to
// its expansion. Expansion is gated on a following capitalized word so
// unrelated abbreviations are left alone.
var titleAbbreviationTable = map[string]string{
	"Mr":   "Mister",
	"Mrs":  "Misses",
	"Ms":   "Miss",
	"Dr":   "Doctor",
	"Prof": "Professor",
	"St":   "Saint",
	"Capt": "Captain",
	"Gen":  "General",
	"Lt":   "Lieutenant",
	"Sgt":  "Sergeant",
}

// plainAbbreviationTable maps abbreviations expanded regardless of the
// following word.
var plainAbbreviationTable = map[string]string{
	"etc": "et cetera",
	"vs":  "versus",
}
