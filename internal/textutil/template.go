package textutil

import "strings"

// templateValueReplacer rewrites characters that MediaWiki would otherwise
// read as template syntax inside a parameter value.
var templateValueReplacer = strings.NewReplacer(
	"=", "{{=}}",
)

// EscapeTemplateValue escapes every "=" in value so it can be passed verbatim
// as a template parameter.
func EscapeTemplateValue(value string) string {
	if !strings.Contains(value, "=") {
		return value
	}
	return templateValueReplacer.Replace(value)
}
