package note

import (
	"strings"
)

// Values are the editable fields as entered in a form.
type Values struct {
	Title   string
	Content string
	Tags    []string
}

// ParseTags splits a comma separated list into trimmed, non-empty tags in
// the order entered. Duplicates are kept; see DedupeTags.
func ParseTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

// NormalizeTags trims every tag and drops the empty ones.
func NormalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DedupeTags drops tags equal, ignoring case, to an earlier one.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// DiffTags compares two tag lists ignoring case and returns the lowercased
// tags that were added and removed.
func DiffTags(prev, next []string) (added, removed []string) {
	prevSet := lowerSet(NormalizeTags(prev))
	nextSet := lowerSet(NormalizeTags(next))

	for _, t := range nextSet.order {
		if _, ok := prevSet.items[t]; !ok {
			added = append(added, t)
		}
	}
	for _, t := range prevSet.order {
		if _, ok := nextSet.items[t]; !ok {
			removed = append(removed, t)
		}
	}
	return added, removed
}

type orderedSet struct {
	items map[string]struct{}
	order []string
}

func lowerSet(tags []string) orderedSet {
	s := orderedSet{items: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		k := strings.ToLower(t)
		if _, ok := s.items[k]; ok {
			continue
		}
		s.items[k] = struct{}{}
		s.order = append(s.order, k)
	}
	return s
}

// TagsKey joins the trimmed, non-empty tags with "|" for comparison.
func TagsKey(tags []string) string {
	return strings.Join(NormalizeTags(tags), "|")
}

// HasChanges reports whether v differs from the stored note. Title and
// content compare byte for byte, tags compare in order.
func HasChanges(n Note, v Values) bool {
	if n.Title != v.Title {
		return true
	}
	if n.Content != v.Content {
		return true
	}
	return TagsKey(n.Tags) != TagsKey(v.Tags)
}
