package dbx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered []string as a JSON array column.
// A nil list is written as SQL NULL; an empty list as "[]".
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("dbx: cannot scan %T into StringList", src)
	}

	out := []string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("dbx: decode string list: %w", err)
	}
	*l = out
	return nil
}

// JSONDoc stores an arbitrary JSON document column. A nil document is
// written as SQL NULL.
type JSONDoc json.RawMessage

func (d JSONDoc) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	if !json.Valid(d) {
		return nil, fmt.Errorf("dbx: invalid json document")
	}
	return string(d), nil
}

func (d *JSONDoc) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append(JSONDoc(nil), v...)
	case string:
		*d = JSONDoc(v)
	default:
		return fmt.Errorf("dbx: cannot scan %T into JSONDoc", src)
	}
	return nil
}
