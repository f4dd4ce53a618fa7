// Package util contains small presentation helpers shared across layers.
package util

import "regexp"

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_]+)`)

// ExtractMentions returns the distinct @name tokens in text, in order of
// first appearance and without the leading @.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	mentions := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		mentions = append(mentions, name)
	}

	return mentions
}
