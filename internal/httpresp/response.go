package httpresp

import (
	"bytes"
	"encoding/json"
)

// ListResponse is the paged envelope some list endpoints use instead of a bare array.
type ListResponse[T any] struct {
	Data    []T `json:"data"`
	Content []T `json:"content"`
	Total   int `json:"total"`
}

// DecodeList accepts a bare JSON array, a {"content": [...]} page or a
// {"data": [...]} envelope. Anything else decodes to an empty list.
func DecodeList[T any](raw []byte) []T {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return []T{}
		}
		return items
	}

	var env ListResponse[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return []T{}
	}
	switch {
	case env.Content != nil:
		return env.Content
	case env.Data != nil:
		return env.Data
	}
	return []T{}
}
