package normalizer

import (
	"errors"
	"strconv"
	"strings"
)

// Numeric bases and boundaries for word conversion.
const (
	numberBaseTen      = 10
	numberBaseTwenty   = 20
	numberBaseHundred  = 100
	numberBaseThousand = 1000
	// yearReadingFloor is the smallest magnitude read as paired two-digit
	// groups ("nineteen ninety-eight") instead of a plain cardinal.
	yearReadingFloor = 1500
	// maxCardinalDigits bounds conversion at hundreds of trillions.
	maxCardinalDigits = 15
	tripletWidth      = 3
	yearDigits        = 4
)

// ErrMagnitudeTooLarge signals a numeric capture beyond the supported scale.
// Handlers respond by leaving the original span unrewritten.
var ErrMagnitudeTooLarge = errors.New("number exceeds the largest supported scale")

// Word vocabularies for cardinal reading.
var (
	onesWords = []string{
		"zero", "one", "two", "three", "four",
		"five", "six", "seven", "eight", "nine",
	}
	teensWords = []string{
		"ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	tensWords = []string{
		"", "", "twenty", "thirty", "forty",
		"fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scaleWords = []string{"", "thousand", "million", "billion", "trillion"}
)

// multiplierWords maps a multiplier suffix to the scale word it contributes.
// The suffix scales the spoken vocabulary, not the numeric value: "5.3k" is
// read "five point three thousand".
var multiplierWords = map[string]string{
	"k":        "thousand",
	"m":        "million",
	"b":        "billion",
	"t":        "trillion",
	"thousand": "thousand",
	"million":  "million",
	"billion":  "billion",
	"trillion": "trillion",
}

// twoDigitWords converts 0-99 into words, hyphenating tens-ones pairs.
func twoDigitWords(value int) string {
	switch {
	case value < numberBaseTen:
		return onesWords[value]
	case value < numberBaseTwenty:
		return teensWords[value-numberBaseTen]
	default:
		word := tensWords[value/numberBaseTen]
		if remainder := value % numberBaseTen; remainder > 0 {
			word += "-" + onesWords[remainder]
		}

		return word
	}
}

// tripletWords converts 0-999 into words, joining the hundreds remainder
// with "and" ("one hundred and twenty-three").
func tripletWords(value int) string {
	if value < numberBaseHundred {
		return twoDigitWords(value)
	}

	word := onesWords[value/numberBaseHundred] + " hundred"
	if remainder := value % numberBaseHundred; remainder > 0 {
		word += " and " + twoDigitWords(remainder)
	}

	return word
}

// cardinalWords converts a non-negative run of ASCII digits into its
// standard cardinal reading by decomposing it into base-1000 groups.
func cardinalWords(digits string) (string, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return onesWords[0], nil
	}

	if len(trimmed) > maxCardinalDigits {
		return "", ErrMagnitudeTooLarge
	}

	padding := (tripletWidth - len(trimmed)%tripletWidth) % tripletWidth
	padded := strings.Repeat("0", padding) + trimmed
	groupCount := len(padded) / tripletWidth

	var (
		parts          []string
		lastIsTensOnes bool
	)

	for groupIndex := range groupCount {
		group, err := strconv.Atoi(padded[groupIndex*tripletWidth : (groupIndex+1)*tripletWidth])
		if err != nil {
			return "", err
		}

		if group == 0 {
			continue
		}

		word := tripletWords(group)
		if scale := scaleWords[groupCount-1-groupIndex]; scale != "" {
			word += " " + scale

			lastIsTensOnes = false
		} else {
			lastIsTensOnes = group < numberBaseHundred
		}

		parts = append(parts, word)
	}

	// "one thousand and thirty-five": the final tens/ones remainder joins
	// its higher groups with "and".
	if len(parts) > 1 && lastIsTensOnes {
		return strings.Join(parts[:len(parts)-1], " ") + " and " + parts[len(parts)-1], nil
	}

	return strings.Join(parts, " "), nil
}

// isYearReading reports whether a digit run qualifies for the four-digit
// year rule: exactly four digits with magnitude above the year floor.
func isYearReading(digits string) bool {
	if len(digits) != yearDigits {
		return false
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}

	return value > yearReadingFloor
}

// yearWords reads a four-digit integer as two two-digit groups:
// "1998" becomes "nineteen ninety-eight", "2005" becomes "twenty oh five".
// Even millennia read as plain cardinals: "2000" is "two thousand", not
// "twenty hundred".
func yearWords(digits string) string {
	left, _ := strconv.Atoi(digits[:2])
	right, _ := strconv.Atoi(digits[2:])

	switch {
	case right == 0 && left%numberBaseTen == 0:
		return onesWords[left/numberBaseTen] + " thousand"
	case right == 0:
		return twoDigitWords(left) + " hundred"
	case right < numberBaseTen:
		return twoDigitWords(left) + " oh " + onesWords[right]
	default:
		return twoDigitWords(left) + " " + twoDigitWords(right)
	}
}

// digitWords reads each digit individually in left-to-right order, with a
// leading zero read as "zero". Non-digit runes are skipped.
func digitWords(digits string) string {
	words := make([]string, 0, len(digits))

	for _, char := range digits {
		if char < '0' || char > '9' {
			continue
		}

		words = append(words, onesWords[char-'0'])
	}

	return strings.Join(words, " ")
}

// plainNumberWords converts a non-negative integer or decimal literal
// without applying the year heuristic. The fractional part is read
// digit-by-digit after "point", never as a magnitude.
func plainNumberWords(literal string) (string, error) {
	integerPart, fractionPart, hasFraction := strings.Cut(literal, ".")
	if integerPart == "" {
		integerPart = "0"
	}

	words, err := cardinalWords(integerPart)
	if err != nil {
		return "", err
	}

	if hasFraction && fractionPart != "" {
		words += " point " + digitWords(fractionPart)
	}

	return words, nil
}

// numberWords converts a signed integer or decimal literal with an optional
// multiplier suffix into its spoken form. Grouping commas are ignored. A
// four-digit integer above the year floor is read as paired two-digit groups
// unless a multiplier suffix is present; comma-grouped literals ("2,024")
// always read as cardinals.
func numberWords(literal, suffix string) (string, error) {
	var builder strings.Builder

	hadCommas := strings.Contains(literal, ",")
	remaining := strings.ReplaceAll(literal, ",", "")
	for _, sign := range []string{"-", "−"} {
		if strings.HasPrefix(remaining, sign) {
			builder.WriteString("minus ")
			remaining = strings.TrimPrefix(remaining, sign)

			break
		}
	}

	integerPart, fractionPart, hasFraction := strings.Cut(remaining, ".")
	if integerPart == "" {
		integerPart = "0"
	}

	if !hasFraction && !hadCommas && suffix == "" && isYearReading(integerPart) {
		builder.WriteString(yearWords(integerPart))

		return builder.String(), nil
	}

	integerWords, err := cardinalWords(integerPart)
	if err != nil {
		return "", err
	}

	builder.WriteString(integerWords)

	if hasFraction && fractionPart != "" {
		builder.WriteString(" point ")
		builder.WriteString(digitWords(fractionPart))
	}

	if suffix != "" {
		scale, known := multiplierWords[strings.ToLower(suffix)]
		if !known {
			return "", ErrMagnitudeTooLarge
		}

		builder.WriteString(" ")
		builder.WriteString(scale)
	}

	return builder.String(), nil
}
