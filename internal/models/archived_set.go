package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ArchivedSet is the per-user set of archived partner IDs. The column is a
// JSONB array of integers; membership is set semantics regardless of the
// order the array happens to be stored in.
type ArchivedSet []uint

// Value implements driver.Valuer, encoding the set as a JSON array.
func (s ArchivedSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]uint(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. It accepts the raw JSONB bytes from Postgres
// and normalizes them into a deduplicated slice.
func (s *ArchivedSet) Scan(src any) error {
	if src == nil {
		*s = ArchivedSet{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("archived set: cannot scan %T", src)
	}

	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return errors.New("archived set: malformed JSON array")
	}

	*s = normalize(ids)
	return nil
}

// Has reports whether the partner ID is in the set.
func (s ArchivedSet) Has(id uint) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Sorted returns the set in ascending ID order for reproducible responses.
func (s ArchivedSet) Sorted() ArchivedSet {
	out := normalize(s)
	return out
}

func normalize(ids []uint) ArchivedSet {
	seen := make(map[uint]struct{}, len(ids))
	out := make(ArchivedSet, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
