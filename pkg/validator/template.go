package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// Template placeholders.
const (
	PlaceholderName  = "{{name}}"
	PlaceholderValue = "{{value}}"
)

// Render substitutes every {{name}} and {{value}} placeholder in tmpl.
func Render(tmpl, name, value string) string {
	return strings.NewReplacer(PlaceholderName, name, PlaceholderValue, value).Replace(tmpl)
}

// FormatArg renders an expected argument for use in a message.
// Numbers drop trailing zeros, patterns render their source.
func FormatArg(arg any) string {
	switch a := arg.(type) {
	case nil:
		return ""
	case string:
		return a
	case *regexp.Regexp:
		if a == nil {
			return ""
		}
		return a.String()
	}
	if s, err := cast.ToStringE(arg); err == nil {
		return s
	}
	return fmt.Sprint(arg)
}
