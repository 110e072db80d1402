package diaglog

import (
	"regexp"
	"strings"
)

// CredentialReplacement is the placeholder written over detected secrets.
const CredentialReplacement = "[Hidden Credential]"

// credentialTokens are prefixes that introduce a secret value inside
// connection-string-like text. A match runs from the token start to the
// next value terminator. New patterns are added here, not in control flow.
var credentialTokens = []string{
	"Token=",
	"DefaultEndpointsProtocol=http",
	"AccountKey=",
	"Data Source=",
	"Server=",
	"Password=",
	"pwd=",
	"&amp;sig=",
	"&sig=",
	"SharedAccessKey=",
}

// valueTerminators end a secret value: a quote or the start of markup.
// Semicolons are deliberately not terminators so an entire connection
// string is masked once any of its pairs carries a credential token.
const valueTerminators = `'"<`

var credentialPattern = buildCredentialPattern(credentialTokens)

// buildCredentialPattern compiles the token table into a single
// case-insensitive pattern. RE2 has no backtracking, so adversarial input
// cannot blow up matching.
func buildCredentialPattern(tokens []string) *regexp.Regexp {
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		quoted = append(quoted, regexp.QuoteMeta(token))
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)[^` + valueTerminators + `]*`)
}

// Sanitize masks credential-shaped substrings in text with the fixed
// placeholder, leaving all non-matching text untouched. It never fails:
// input without a match is returned unchanged. Sanitize is idempotent and
// safe for unsynchronized concurrent use.
func Sanitize(text string) string {
	if text == "" {
		return text
	}
	return credentialPattern.ReplaceAllString(text, CredentialReplacement)
}
