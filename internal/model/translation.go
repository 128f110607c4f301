package model

import "time"

// Translation is one localized string. The engine only ever reads active
// rows; creation and editing belong to the external admin workflow.
//
// (language, group, key) is unique. A nil Group is its own bucket,
// distinct from every named group.
type Translation struct {
	ID        int64
	Language  string
	Group     *string
	Key       string
	Value     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
