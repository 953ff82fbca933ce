// Package render turns extracted script records into Loon and Surge config
// text. Both renderers are pure: the same record always yields byte-identical
// output.
package render

import (
	"strings"

	"git.home.luguber.info/inful/scriptport/internal/script"
)

// iconBase points at the shared icon set the generated headers reference.
const iconBase = "https://raw.githubusercontent.com/Koolson/Qure/master/IconSet"

// Dialect names used in log output.
const (
	DialectLoon  = "loon"
	DialectSurge = "surge"
)

// tag derives the icon/tag identifier: lower-cased app name with all
// whitespace removed, falling back to the lower-cased file name.
func tag(rec script.Record) string {
	name := rec.AppName
	if name == "" {
		name = rec.FileName
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}

func displayName(rec script.Record) string {
	if rec.AppName != "" {
		return rec.AppName
	}
	return rec.FileName
}

// hasRewrite reports whether the record carries enough to emit a script
// stanza. Only the first pattern is ever rendered; the rest stay unused.
func hasRewrite(rec script.Record) bool {
	return len(rec.Patterns) > 0 && rec.ScriptPath != ""
}
