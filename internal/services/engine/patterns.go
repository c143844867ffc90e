package engine

import "regexp"

// form pairs a sentence pattern with the handler that answers it.
type form struct {
	name    string
	pattern *regexp.Regexp
	handle  func(e *Engine, line string, m []string) (string, bool, error)
}

// forms is evaluated in order; the first pattern that matches wins.
var forms = []form{
	{
		name:    "define digit",
		pattern: regexp.MustCompile(`^([a-z]+)\s+(?i:is)\s+([IVXLCDM])$`),
		handle:  (*Engine).defineDigit,
	},
	{
		name:    "define price",
		pattern: regexp.MustCompile(`^(?:([a-z\s]*?)\s+)?([A-Z].*)\s+(?i:is)\s+(\d+)\s+(?i:credits)$`),
		handle:  (*Engine).definePrice,
	},
	{
		name:    "query numeral",
		pattern: regexp.MustCompile(`^(?i:how\s+much\s+is\s+)([a-z\s]*)\?$`),
		handle:  (*Engine).queryNumeral,
	},
	{
		name:    "query price",
		pattern: regexp.MustCompile(`^(?i:how\s+many\s+credits\s+is\s+)([a-z\s]*)\s+([A-Z].*)\?$`),
		handle:  (*Engine).queryPrice,
	},
}
