package web

import (
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var templateFuncs = template.FuncMap{
	"date":      formatDate,
	"ago":       humanize.Time,
	"accent":    accentClasses,
	"hasPrefix": strings.HasPrefix,
	"initial":   initial,
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// initial is the first letter of s, standing in for a technology logo.
func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

var accents = map[string]string{
	"blue":   "border-blue-500 bg-blue-50 dark:bg-blue-900/20",
	"green":  "border-green-500 bg-green-50 dark:bg-green-900/20",
	"purple": "border-purple-500 bg-purple-50 dark:bg-purple-900/20",
	"orange": "border-orange-500 bg-orange-50 dark:bg-orange-900/20",
}

// accentClasses maps an experience colour to its card classes; unknown
// colours get blue.
func accentClasses(color string) string {
	if c, ok := accents[color]; ok {
		return c
	}
	return accents["blue"]
}
