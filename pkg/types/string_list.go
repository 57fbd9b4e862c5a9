package types

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is the normalization boundary for catalog attributes (images, colors)
// that may arrive either as a native JSON array or as a JSON-encoded string holding
// an array. Any shape that cannot be parsed normalizes to the empty list; decoding
// never fails. The rest of the system only ever sees []string.
type StringList []string

// UnmarshalJSON accepts `["a","b"]` and `"[\"a\",\"b\"]"` alike. Malformed input
// yields an empty list rather than an error.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = parseStringList(data)
	return nil
}

// MarshalJSON always emits a native array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value stores the list as JSON text.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan reads JSON text or bytes from the database, tolerating the same shapes as
// UnmarshalJSON.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case []byte:
		*l = parseStringList(v)
	case string:
		*l = parseStringList([]byte(v))
	default:
		*l = StringList{}
	}
	return nil
}

func parseStringList(data []byte) StringList {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		if direct == nil {
			return StringList{}
		}
		return StringList(direct)
	}

	// Double-encoded variant: a JSON string whose contents are the array.
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		var nested []string
		if err := json.Unmarshal([]byte(encoded), &nested); err == nil && nested != nil {
			return StringList(nested)
		}
		return StringList{}
	}

	// Mixed-type arrays keep only the string members.
	var loose []any
	if err := json.Unmarshal(data, &loose); err == nil {
		out := make(StringList, 0, len(loose))
		for _, item := range loose {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}

	return StringList{}
}
