// form/schedule.go
package form

import (
	"regexp"
	"strings"
)

var (
	hourRegex   = regexp.MustCompile(`(\d+)\s*hour`)
	minuteRegex = regexp.MustCompile(`(\d+)\s*minute`)
)

// ParseDeliveryTime splits a stored delivery-time phrase back into its hour
// and minute components. A unit missing from the phrase comes back empty.
func ParseDeliveryTime(s string) (hours, minutes string) {
	if m := hourRegex.FindStringSubmatch(s); m != nil {
		hours = m[1]
	}
	if m := minuteRegex.FindStringSubmatch(s); m != nil {
		minutes = m[1]
	}
	return hours, minutes
}

// FormatDeliveryTime rebuilds the combined phrase from its components,
// pluralizing each unit. Parsing the result with ParseDeliveryTime yields
// the same components back.
func FormatDeliveryTime(hours, minutes string) string {
	var parts []string
	if h := strings.TrimSpace(hours); h != "" && h != "0" {
		parts = append(parts, h+" "+pluralize("hour", h))
	}
	if m := strings.TrimSpace(minutes); m != "" && m != "0" {
		parts = append(parts, m+" "+pluralize("minute", m))
	}
	return strings.Join(parts, " ")
}

func pluralize(unit, amount string) string {
	if amount == "1" {
		return unit
	}
	return unit + "s"
}
