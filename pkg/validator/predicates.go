package validator

import (
	"regexp"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	emailPattern           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern             = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlWithProtocolPattern = regexp.MustCompile(`^(https?://)[a-zA-Z0-9.-]+(\.[a-zA-Z]{2,})?(:\d+)?(/.*)?$`)

	// hexColor validates with the go-playground "hexcolor" tag.
	hexColor = sync.OnceValue(func() *playground.Validate {
		return playground.New()
	})

	// patterns caches compiled regex arguments; failed compilations are cached as nil.
	patterns sync.Map
)

// Required fails for nil and for strings that are empty or whitespace-only.
// Other values pass when their text form has a non-space character.
func Required(value, _ any) bool {
	s, ok := toString(value)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

// MinLength passes when a truthy value has at least arg runes or elements.
func MinLength(value, arg any) bool {
	return lengthBound(value, arg, func(n int, limit float64) bool { return float64(n) >= limit })
}

// MaxLength passes when a truthy value has at most arg runes or elements.
// Falsy values, including the empty string, fail.
func MaxLength(value, arg any) bool {
	return lengthBound(value, arg, func(n int, limit float64) bool { return float64(n) <= limit })
}

func lengthBound(value, arg any, cmp func(n int, limit float64) bool) bool {
	if !truthy(value) {
		return false
	}
	n, ok := length(value)
	if !ok {
		return false
	}
	limit, ok := toNumber(arg)
	if !ok {
		return false
	}
	return cmp(n, limit)
}

// Min passes when the numeric value is at least arg. Falsy values count as 0.
func Min(value, arg any) bool {
	return numericBound(value, arg, func(n, limit float64) bool { return n >= limit })
}

// Max passes when the numeric value is at most arg. Falsy values count as 0.
func Max(value, arg any) bool {
	return numericBound(value, arg, func(n, limit float64) bool { return n <= limit })
}

func numericBound(value, arg any, cmp func(n, limit float64) bool) bool {
	n := 0.0
	if truthy(value) {
		var ok bool
		if n, ok = toNumber(value); !ok {
			return false
		}
	}
	limit, ok := toNumber(arg)
	if !ok {
		return false
	}
	return cmp(n, limit)
}

// Number passes when value coerces to a number.
func Number(value, _ any) bool {
	_, ok := toNumber(value)
	return ok
}

// Email passes for the local@domain.tld shape.
func Email(value, _ any) bool {
	return matchText(emailPattern, value)
}

// URL passes for bare domains such as "example.com"; no scheme is allowed.
func URL(value, _ any) bool {
	return matchText(urlPattern, value)
}

// URLWithProtocol passes for http:// or https:// URLs with optional port and path.
func URLWithProtocol(value, _ any) bool {
	return matchText(urlWithProtocolPattern, value)
}

// Color passes for 3, 4, 6 or 8 digit hex colors, with or without a leading '#'.
func Color(value, _ any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return hexColor().Var(s, "hexcolor") == nil
}

// Regex passes when value is truthy and matches the pattern given as arg.
// arg may be a *regexp.Regexp or a pattern string; patterns that fail to
// compile never match.
func Regex(value, arg any) bool {
	if !truthy(value) {
		return false
	}
	re := compile(arg)
	if re == nil {
		return false
	}
	s, ok := toString(value)
	return ok && re.MatchString(s)
}

func matchText(re *regexp.Regexp, value any) bool {
	s, ok := toString(value)
	return ok && re.MatchString(s)
}

func compile(arg any) *regexp.Regexp {
	if re, ok := arg.(*regexp.Regexp); ok {
		return re
	}
	pattern, ok := toString(arg)
	if !ok {
		return nil
	}
	if cached, ok := patterns.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	patterns.Store(pattern, re)
	return re
}
