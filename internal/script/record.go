package script

// DefaultAuthor is stamped into every record; the source dialect carries no
// usable author metadata.
const DefaultAuthor = "scriptport"

// Record holds the metadata extracted from one QuantumultX source script.
// Records are built once per source file and never mutated afterwards; the
// renderers are their only consumer.
type Record struct {
	// FileName is the extension-stripped base name of the source file.
	FileName string
	// AppName is the human-readable label, falling back to FileName.
	AppName string
	// Author is a constant placeholder, optionally overridden by config.
	Author string
	// ScriptPath references the executable script resource; may be empty.
	ScriptPath string
	// Patterns holds the URL match expressions in first-seen order, deduplicated.
	Patterns []string
	// Hostnames holds the MITM hostnames in first-seen order, deduplicated.
	Hostnames []string
}
