package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/scriptport/internal/script"
)

// Loon renders a record as a Loon plugin. Header lines are always present;
// the [Script]/[MITM] stanza is emitted only when the record has both a
// pattern and a script path.
func Loon(rec script.Record) string {
	var b strings.Builder
	t := tag(rec)

	fmt.Fprintf(&b, "#!name = %s\n", displayName(rec))
	fmt.Fprintf(&b, "#!desc = Converted from %s (QuantumultX)\n", rec.FileName)
	fmt.Fprintf(&b, "#!author = %s\n", rec.Author)
	fmt.Fprintf(&b, "#!icon = %s/%s.png\n", iconBase, t)

	if hasRewrite(rec) {
		b.WriteString("\n[Script]\n")
		fmt.Fprintf(&b, "http-response %s script-path=%s, requires-body=true, timeout=60, tag=%s\n",
			rec.Patterns[0], rec.ScriptPath, t)

		if len(rec.Hostnames) > 0 {
			b.WriteString("\n[MITM]\n")
			fmt.Fprintf(&b, "hostname = %s\n", strings.Join(rec.Hostnames, ", "))
		}
	}

	return b.String()
}
