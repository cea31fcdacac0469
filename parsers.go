package wrangle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BooleanParser is the strict boolean parser: "true"/"false", case
// insensitive, nothing else.
func BooleanParser(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a valid boolean (expected true or false)", raw)
	}
}

var (
	looseTrue  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "on": true, "1": true}
	looseFalse = map[string]bool{"false": true, "f": true, "no": true, "n": true, "off": true, "0": true}
)

// LooseBooleanParser accepts a broader set of truthy/falsy spellings:
// {true,t,yes,y,on,1} and {false,f,no,n,off,0}, case insensitive.
func LooseBooleanParser(raw string) (bool, error) {
	lower := strings.ToLower(raw)
	if looseTrue[lower] {
		return true, nil
	}
	if looseFalse[lower] {
		return false, nil
	}
	return false, fmt.Errorf("%q is not a recognized boolean value", raw)
}

// NumberParser parses raw as a float64, rejecting NaN, +Inf, and -Inf —
// syntactically valid per strconv but never useful flag/positional values.
func NumberParser(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}

// BuildChoiceParser returns a parser that accepts only one of values
// (exact, case-sensitive match) and otherwise fails with the same
// "is not one of (a|b|...)" message the enum flag kind uses.
func BuildChoiceParser(values []string) func(string) (string, error) {
	return func(raw string) (string, error) {
		for _, v := range values {
			if raw == v {
				return raw, nil
			}
		}
		return "", fmt.Errorf("%q is not one of (%s)", raw, strings.Join(values, "|"))
	}
}

// booleanParserErased, looseBooleanParserErased, numberParserErased are the
// type-erased ValueParser forms of the above.
var (
	booleanParserErased      = ParserOf(BooleanParser)
	looseBooleanParserErased = ParserOf(LooseBooleanParser)
	numberParserErased       = ParserOf(NumberParser)
)
