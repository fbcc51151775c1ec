package utils

import "encoding/json"

// DecodeStringArray decodes a JSON-encoded string array column. Rows
// written by the legacy app are sometimes double-encoded (the first parse
// yields a string rather than an array), so a second parse is attempted
// before giving up. Writes always single-encode; this fallback exists for
// backward compatibility only.
func DecodeStringArray(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}

	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &arr); err == nil {
			return arr
		}
	}
	return []string{}
}

// EncodeStringArray single-encodes a string array for storage. A nil
// slice encodes as an empty array, never "null".
func EncodeStringArray(arr []string) string {
	if arr == nil {
		arr = []string{}
	}
	b, _ := json.Marshal(arr)
	return string(b)
}
