package script

import (
	"regexp"
	"strings"
)

// App name candidates, tried in order; first non-empty capture wins.
var appNamePatterns = []*regexp.Regexp{
	// Userscript-style decorated comment marker: // @name Example
	regexp.MustCompile(`(?m)^\s*//\s*@name[:=\s]\s*(.+?)\s*$`),
	// JS variable assignment: const appName = "Example"
	regexp.MustCompile(`(?:const|let|var)\s+appName\s*=\s*["']([^"']+)["']`),
	// First title line of a leading block comment.
	regexp.MustCompile(`/\*+\s*\n\s*\*?\s*([^\n*][^\n]*?)\s*\n`),
	// QuantumultX snippet header: #!name = Example
	regexp.MustCompile(`(?m)^#!name\s*=\s*(.+?)\s*$`),
}

// qxRewritePattern matches the rewrite line directly under a [rewrite_local]
// section header. It is applied once, before the global patterns.
var qxRewritePattern = regexp.MustCompile(`\[rewrite_local\]\s*\n\s*(\S+)\s+url\s+script-`)

// Global (find-all) pattern candidates; every newly seen capture is appended.
var globalRewritePatterns = []*regexp.Regexp{
	// Bare QX rewrite lines anywhere in the file.
	regexp.MustCompile(`(?m)^\s*(\^\S+)\s+url\s+script-(?:request|response)-(?:body|header)`),
	// Surge-style inline pattern assignment.
	regexp.MustCompile(`pattern\s*=\s*([^,\s]+)`),
	// Loon-style script lines.
	regexp.MustCompile(`(?m)^\s*http-(?:request|response)\s+(\S+)`),
}

// Script path candidates, tried in order; first non-empty capture wins.
var scriptPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`url\s+script-(?:request|response)-(?:body|header)\s+(\S+)`),
	regexp.MustCompile(`script-path\s*=\s*([^,\s]+)`),
}

// mitmBlockPattern captures the hostname assignment of each [MITM] block. The
// section marker is a case-sensitive literal; the character class crosses
// newlines without needing single-line mode.
var mitmBlockPattern = regexp.MustCompile(`\[MITM\][^\[]*?hostname\s*=\s*([^\n]+)`)

var hostnameSeparators = regexp.MustCompile(`[,\s]+`)

// Extract scrapes the metadata record for one source file. baseName is the
// extension-stripped file name and doubles as the app name fallback.
func Extract(content, baseName string) Record {
	rec := Record{
		FileName: baseName,
		AppName:  extractAppName(content, baseName),
		Author:   DefaultAuthor,
	}

	seen := make(map[string]struct{})
	if m := qxRewritePattern.FindStringSubmatch(content); m != nil {
		rec.Patterns = appendDistinct(rec.Patterns, seen, m[1])
	}
	for _, re := range globalRewritePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			rec.Patterns = appendDistinct(rec.Patterns, seen, m[1])
		}
	}

	for _, re := range scriptPathPatterns {
		if m := re.FindStringSubmatch(content); m != nil && m[1] != "" {
			rec.ScriptPath = m[1]
			break
		}
	}

	rec.Hostnames = extractHostnames(content)
	return rec
}

func extractAppName(content, baseName string) string {
	for _, re := range appNamePatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return baseName
}

func extractHostnames(content string) []string {
	var hostnames []string
	seen := make(map[string]struct{})
	for _, m := range mitmBlockPattern.FindAllStringSubmatch(content, -1) {
		line := m[1]
		// Strip append/insert markers before tokenizing.
		line = strings.ReplaceAll(line, "%APPEND%", " ")
		line = strings.ReplaceAll(line, "%INSERT%", " ")
		for _, token := range hostnameSeparators.Split(line, -1) {
			if token == "" {
				continue
			}
			hostnames = appendDistinct(hostnames, seen, token)
		}
	}
	return hostnames
}

func appendDistinct(values []string, seen map[string]struct{}, v string) []string {
	if _, ok := seen[v]; ok {
		return values
	}
	seen[v] = struct{}{}
	return append(values, v)
}
