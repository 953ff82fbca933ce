package script

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_AppNameFromDecoratedComment(t *testing.T) {
	content := "// @name Profile Unlock\nconst appName = \"Loser\";\n#!name = Also Loser\n"

	rec := Extract(content, "profile")
	require.Equal(t, "Profile Unlock", rec.AppName)
}

func TestExtract_AppNameFromVariableAssignment(t *testing.T) {
	content := "const appName = \"Profile Unlock\";\nlet body = $response.body;\n"

	rec := Extract(content, "profile")
	require.Equal(t, "Profile Unlock", rec.AppName)
}

func TestExtract_AppNameFromBlockCommentTitle(t *testing.T) {
	content := "/*\n * Profile Unlock\n * assorted notes\n */\nlet body = $response.body;\n"

	rec := Extract(content, "profile")
	require.Equal(t, "Profile Unlock", rec.AppName)
}

func TestExtract_AppNameFromSnippetHeader(t *testing.T) {
	content := "#!name = Profile Unlock\n[rewrite_local]\n"

	rec := Extract(content, "profile")
	require.Equal(t, "Profile Unlock", rec.AppName)
}

func TestExtract_AppNameDefaultsToBaseName(t *testing.T) {
	rec := Extract("let body = $response.body;\n", "profile")
	require.Equal(t, "profile", rec.AppName)
}

func TestExtract_AuthorIsConstant(t *testing.T) {
	rec := Extract("", "profile")
	require.Equal(t, DefaultAuthor, rec.Author)
}

func TestExtract_PatternPrecedenceAndDedup(t *testing.T) {
	content := "[rewrite_local]\n" +
		`^https://api\.example\.com/v1/profile url script-response-body https://cdn.example.com/profile.js` + "\n" +
		`^https://api\.example\.com/v2/level url script-response-body https://cdn.example.com/level.js` + "\n"

	rec := Extract(content, "profile")
	require.Equal(t, []string{
		`^https://api\.example\.com/v1/profile`,
		`^https://api\.example\.com/v2/level`,
	}, rec.Patterns)
}

// The echo-response rewrite form is reachable only through the
// [rewrite_local] single-shot match: its pattern does not start with ^ and
// its directive is not a body/header rewrite, so no global scan finds it.
// It must still come first, ahead of anything the global scans add.
func TestExtract_RewriteLocalOnlyPatternCapturedFirst(t *testing.T) {
	content := "[rewrite_local]\n" +
		`https://api\.example\.com/v1/echo url script-echo-response https://cdn.example.com/echo.js` + "\n" +
		`^https://api\.example\.com/v2/level url script-response-body https://cdn.example.com/level.js` + "\n"

	rec := Extract(content, "profile")
	require.Equal(t, []string{
		`https://api\.example\.com/v1/echo`,
		`^https://api\.example\.com/v2/level`,
	}, rec.Patterns)
}

func TestExtract_PatternsFromSurgeStyleAssignment(t *testing.T) {
	content := "profile = type=http-response,pattern=^https://api\\.example\\.com/v1,requires-body=1\n"

	rec := Extract(content, "profile")
	require.Equal(t, []string{`^https://api\.example\.com/v1`}, rec.Patterns)
}

func TestExtract_NoPatterns(t *testing.T) {
	rec := Extract("let body = $response.body;\n", "profile")
	require.Empty(t, rec.Patterns)
}

func TestExtract_ScriptPathFromRewriteLine(t *testing.T) {
	content := `^https://api\.example\.com/v1 url script-response-body https://cdn.example.com/profile.js` + "\n"

	rec := Extract(content, "profile")
	require.Equal(t, "https://cdn.example.com/profile.js", rec.ScriptPath)
}

func TestExtract_ScriptPathFromScriptPathAssignment(t *testing.T) {
	content := "profile = type=http-response,pattern=^https://x,script-path=https://cdn.example.com/profile.js\n"

	rec := Extract(content, "profile")
	require.Equal(t, "https://cdn.example.com/profile.js", rec.ScriptPath)
}

func TestExtract_ScriptPathDefaultsToEmpty(t *testing.T) {
	rec := Extract("no paths here\n", "profile")
	require.Empty(t, rec.ScriptPath)
}

func TestExtract_HostnamesFromMitmBlock(t *testing.T) {
	content := "[MITM]\nhostname = %APPEND% a.com, b.com\n"

	rec := Extract(content, "profile")
	require.Equal(t, []string{"a.com", "b.com"}, rec.Hostnames)
}

func TestExtract_HostnamesDedupAcrossBlocks(t *testing.T) {
	content := "[MITM]\nhostname = a.com, b.com\n\n" +
		"[MITM]\nhostname = %INSERT% b.com, c.com\n"

	rec := Extract(content, "profile")
	require.Equal(t, []string{"a.com", "b.com", "c.com"}, rec.Hostnames)
}

func TestExtract_NoMitmBlock(t *testing.T) {
	rec := Extract("hostname = a.com\n", "profile")
	require.Empty(t, rec.Hostnames)
}
