package note

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Raw is a loosely shaped note as decoded from storage or starter data.
type Raw map[string]any

// legacyAliases maps older field names onto their canonical names. The
// canonical field wins when both are present.
var legacyAliases = map[string]string{
	"isArchived": "archived",
	"updatedAt":  "lastEdited",
}

// canonical returns a copy of raw with legacy aliases folded into their
// canonical keys.
func canonical(raw Raw) Raw {
	out := make(Raw, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for alias, name := range legacyAliases {
		v, ok := out[alias]
		if !ok {
			continue
		}
		delete(out, alias)
		if cur, exists := out[name]; !exists || cur == nil {
			out[name] = v
		}
	}
	return out
}

// Normalize turns a raw record into a valid Note. It never fails: missing
// or malformed fields fall back to defaults, a missing id is generated and
// missing dates become today.
func Normalize(raw Raw) Note {
	r := canonical(raw)

	n := Note{
		ID:       stringField(r, "id"),
		Title:    stringField(r, "title"),
		Content:  stringField(r, "content"),
		Tags:     tagsField(r),
		Archived: boolField(r, "archived"),
		Created:  stringField(r, "created"),
	}
	if strings.TrimSpace(n.ID) == "" {
		n.ID = NewID()
	}
	if n.Created == "" {
		n.Created = Today()
	}
	n.LastEdited = normalizeDate(r["lastEdited"])
	return n
}

// NormalizeAll normalizes every record in raws, keeping their order.
func NormalizeAll(raws []Raw) []Note {
	notes := make([]Note, 0, len(raws))
	for _, r := range raws {
		notes = append(notes, Normalize(r))
	}
	return notes
}

// HasID reports whether raw already carries a usable id. Records without
// one get a fresh id on every Normalize, so callers persist them once.
func (r Raw) HasID() bool {
	return strings.TrimSpace(stringField(r, "id")) != ""
}

// ToRaw converts n back into its loose representation.
func ToRaw(n Note) Raw {
	tags := make([]any, len(n.Tags))
	for i, t := range n.Tags {
		tags[i] = t
	}
	return Raw{
		"id":         n.ID,
		"title":      n.Title,
		"content":    n.Content,
		"tags":       tags,
		"archived":   n.Archived,
		"created":    n.Created,
		"lastEdited": n.LastEdited,
	}
}

func stringField(r Raw, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int, int64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func boolField(r Raw, key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		return false
	}
}

func tagsField(r Raw) []string {
	var tags []string
	switch v := r["tags"].(type) {
	case []any:
		for _, t := range v {
			if t == nil {
				continue
			}
			tags = append(tags, fmt.Sprint(t))
		}
	case []string:
		tags = append(tags, v...)
	}
	return NormalizeTags(tags)
}

// normalizeDate reformats a stored lastEdited value to DateLayout. Values
// that cannot be read as a date become today.
func normalizeDate(v any) string {
	switch d := v.(type) {
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return Today()
		}
		if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
			return FormatDate(t)
		}
		if t, err := dateparse.ParseLocal(s); err == nil {
			return FormatDate(t)
		}
	case float64:
		return FormatDate(time.UnixMilli(int64(d)))
	}
	return Today()
}
