package transcript

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
)

// Metadata holds the fields of a transcript's leading frontmatter block
type Metadata struct {
	Guest string `yaml:"guest"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// ParseFrontmatter splits a transcript into its metadata block and body.
// The block must be delimited by lines containing only "---", with the
// first at the very start of the content. The body is the text after the
// closing delimiter, trimmed. When no valid block exists the content is
// returned unchanged with empty metadata.
func ParseFrontmatter(content string) (Metadata, string) {
	var meta Metadata

	if !strings.HasPrefix(content, "---") {
		return meta, content
	}

	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		// Malformed block, treat the whole file as body
		return Metadata{}, content
	}

	return meta, strings.TrimSpace(string(body))
}

var folderSuffixRegex = regexp.MustCompile(`[-_]\d+$`)

// GuestFromFolder derives a display name from an episode folder name.
// A trailing -<digits> or _<digits> suffix is dropped, hyphen segments
// are capitalized at their first letter only and joined with spaces:
// "jane-doe-42" becomes "Jane Doe".
func GuestFromFolder(name string) string {
	name = folderSuffixRegex.ReplaceAllString(name, "")

	words := strings.Split(name, "-")
	parts := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		parts = append(parts, string(unicode.ToUpper(r))+word[size:])
	}

	return strings.Join(parts, " ")
}
