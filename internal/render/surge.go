package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/scriptport/internal/script"
)

// Surge renders a record as a Surge module. Same gating as Loon: headers
// always, stanza only with both a pattern and a script path.
func Surge(rec script.Record) string {
	var b strings.Builder
	t := tag(rec)

	fmt.Fprintf(&b, "#!name=%s\n", displayName(rec))
	fmt.Fprintf(&b, "#!desc=Converted from %s (QuantumultX)\n", rec.FileName)
	fmt.Fprintf(&b, "#!author=%s\n", rec.Author)
	fmt.Fprintf(&b, "#!icon=%s/%s.png\n", iconBase, t)

	if hasRewrite(rec) {
		b.WriteString("\n[Script]\n")
		fmt.Fprintf(&b, "%s = type=http-response,pattern=%s,requires-body=1,max-size=0,script-path=%s\n",
			t, rec.Patterns[0], rec.ScriptPath)

		if len(rec.Hostnames) > 0 {
			b.WriteString("\n[MITM]\n")
			fmt.Fprintf(&b, "hostname = %%APPEND%% %s\n", strings.Join(rec.Hostnames, ", "))
		}
	}

	return b.String()
}
