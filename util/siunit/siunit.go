// Package siunit formats and parses numbers using SI prefixes
// (e.g. 0.04781 -> "47.8 m", "4.78 k" -> 4780).
package siunit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Prefix describes a single SI prefix.
type Prefix struct {
	Short    string
	Long     string
	Exponent int
}

// Prefixes lists the supported SI prefixes in ascending exponent order.
// The empty prefix at exponent 0 keeps lookups uniform.
var Prefixes = []Prefix{
	{"y", "yocto", -24},
	{"z", "zepto", -21},
	{"a", "atto", -18},
	{"f", "femto", -15},
	{"p", "pico", -12},
	{"n", "nano", -9},
	{"µ", "micro", -6},
	{"m", "milli", -3},
	{"", "", 0},
	{"k", "kilo", 3},
	{"M", "mega", 6},
	{"G", "giga", 9},
	{"T", "tera", 12},
	{"P", "peta", 15},
	{"E", "exa", 18},
	{"Z", "zetta", 21},
	{"Y", "yotta", 24},
}

var siNumberRegex = regexp.MustCompile(`^\s*([+-]?\d+(?:\.\d+)?)\s*([yzafpnµmkMGTPEZY])\s*$`)

// Split splits value into a scaled value and an exponent of 10 that is a
// multiple of 3, corresponding to an SI prefix. The scaled value is rounded
// to the given number of digits after the decimal place.
//
// Split(0.04784, 1) returns (47.8, -3); Split(4781.123, 1) returns (4.8, 3).
func Split(value float64, precision int) (float64, int) {
	negative := false

	if value < 0.0 {
		value = -value
		negative = true
	} else if value == 0.0 {
		return 0.0, 0
	}

	expOf10 := int(math.Log10(value))
	if expOf10 > 0 {
		expOf10 = expOf10 / 3 * 3
	} else {
		expOf10 = (-expOf10 + 3) / 3 * -3
	}

	value *= math.Pow(10, float64(-expOf10))

	if value >= 1e3 {
		value /= 1000.0
		expOf10 += 3
	}

	if negative {
		value = -value
	}

	return roundTo(value, precision), expOf10
}

// PrefixFor returns the SI prefix for an exponent of 10. The exponent must
// be a multiple of 3 within [-24, 24]; the exponent 0 maps to the empty
// prefix.
func PrefixFor(expOf10 int) (string, error) {
	for _, p := range Prefixes {
		if p.Exponent == expOf10 {
			return p.Short, nil
		}
	}
	return "", fmt.Errorf("exponent %d out of range of available prefixes", expOf10)
}

// Formatter renders values with a fixed precision and an optional unit
// suffix appended after the prefix, e.g. Unit "B" yields "1.2 kB".
type Formatter struct {
	Precision int
	Unit      string
}

// Format renders value with an SI prefix. Values whose exponent of 10 falls
// outside the prefix table are rendered in exponent notation, e.g.
// "15.51e+27".
func (f Formatter) Format(value float64) string {
	scaled, expOf10 := Split(value, f.Precision)
	valueStr := strconv.FormatFloat(scaled, 'f', f.Precision, 64)

	prefix, err := PrefixFor(expOf10)
	if err == nil {
		if prefix == "" && f.Unit == "" {
			return valueStr
		}
		if f.Unit == "" {
			return valueStr + " " + prefix
		}
		return valueStr + " " + prefix + f.Unit
	}

	sign := ""
	if expOf10 > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%se%s%d%s", valueStr, sign, expOf10, f.Unit)
}

// Format renders value with an SI prefix using the given precision.
func Format(value float64, precision int) string {
	return Formatter{Precision: precision}.Format(value)
}

// Parse converts a value expressed with an SI prefix (as produced by Format)
// back to a floating point number. Plain decimal and exponent notation are
// accepted as well.
func Parse(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v, nil
	}

	m := siNumberRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("cannot parse SI number %q", s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse SI number %q: %w", s, err)
	}

	for _, p := range Prefixes {
		if p.Short == m[2] {
			return v * math.Pow(10, float64(p.Exponent)), nil
		}
	}
	return 0, fmt.Errorf("unknown SI prefix %q", m[2])
}

func roundTo(value float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))
	return math.Round(value*shift) / shift
}
