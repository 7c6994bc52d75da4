package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the backend's response wrapper.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta is pagination metadata. Older handlers report the count as "total",
// newer ones as "total_items".
type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	Total      int64 `json:"total,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// Count returns total_items, falling back to total, falling back to 0.
// A nil Meta counts as 0.
func (m *Meta) Count() int64 {
	if m == nil {
		return 0
	}
	if m.TotalItems > 0 {
		return m.TotalItems
	}
	if m.Total > 0 {
		return m.Total
	}
	return 0
}

// Page is a listing result.
type Page[T any] struct {
	Items []T
	Total int64
}

func decodeEnvelope[T any](body []byte) (*Envelope[T], error) {
	env := &Envelope[T]{}
	if len(bytes.TrimSpace(body)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(body, env); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}
	return env, nil
}

// decodePage unwraps a listing. A single object in data is treated as a
// one-item list and null as an empty one.
func decodePage[T any](body []byte) (Page[T], error) {
	env, err := decodeEnvelope[json.RawMessage](body)
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: []T{}, Total: env.Meta.Count()}
	raw := bytes.TrimSpace(env.Data)

	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
	case raw[0] == '{':
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return Page[T]{}, &DecodeError{Err: err, Body: body}
		}
		page.Items = append(page.Items, item)
	default:
		if err := json.Unmarshal(raw, &page.Items); err != nil {
			return Page[T]{}, &DecodeError{Err: err, Body: body}
		}
		if page.Items == nil {
			page.Items = []T{}
		}
	}
	return page, nil
}
