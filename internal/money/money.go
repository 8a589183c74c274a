package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is an exact currency amount in hundredths. All arithmetic happens on
// integers; the JSON form is a plain two-decimal number (e.g. 5.00) so wire
// payloads stay human-readable without float drift.
type Cents int64

var ErrInvalidAmount = errors.New("invalid money amount")

// Parse accepts "5", "5.0", "5.00" and a leading sign. More than two
// fractional digits is rejected rather than rounded.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("%w: more than two decimals in %q", ErrInvalidAmount, s)
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	var frac int64
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}
	c := whole*100 + frac
	if neg {
		c = -c
	}
	return Cents(c), nil
}

func (c Cents) String() string {
	n := int64(c)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func Sum(vals []Cents) Cents {
	var t Cents
	for _, v := range vals {
		t += v
	}
	return t
}
