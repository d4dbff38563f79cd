package intake

import (
	"encoding/json"
	"fmt"
)

// Serialize converts a repeating section to its storage form. The second
// return is false for an empty or absent section, in which case the key is
// omitted from the stored payload rather than written as an empty
// placeholder.
func Serialize(entries []Entry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return "", false
	}

	return string(payload), true
}

// Deserialize returns the structured form of a repeating section. Drafts
// saved by different code paths disagree on whether sections were already
// serialized, so both a JSON string and an already-structured array are
// accepted. Malformed input yields nil, never an error.
func Deserialize(value any) []Entry {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		var entries []Entry
		if err := json.Unmarshal([]byte(v), &entries); err != nil {
			return nil
		}
		return entries
	case []Entry:
		return v
	case []map[string]string:
		entries := make([]Entry, len(v))
		for i, m := range v {
			entries[i] = Entry(m)
		}
		return entries
	case []any:
		return entriesFromAny(v)
	default:
		return nil
	}
}

func entriesFromAny(values []any) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		item, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		entry := make(Entry, len(item))
		for k, field := range item {
			switch f := field.(type) {
			case string:
				entry[k] = f
			case nil:
				entry[k] = ""
			case float64:
				entry[k] = trimFloat(f)
			case bool:
				entry[k] = fmt.Sprintf("%t", f)
			default:
				return nil
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}

// PackSections rewrites every repeating section of the record into its
// storage form. Applied before a draft or submission is persisted.
func PackSections(record Record) {
	for _, section := range RepeatingSections {
		record.SetEntries(section, record.Entries(section))
	}
}

// UnpackSections rewrites every repeating section into structured arrays
// for the UI. Applied when a draft is loaded.
func UnpackSections(record Record) {
	for _, section := range RepeatingSections {
		entries := record.Entries(section)
		if entries == nil {
			delete(record, section)
			continue
		}
		record[section] = entries
	}
}
