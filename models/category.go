// models/category.go
package models

import "github.com/google/uuid"

// Category is the flat wire shape returned by the listing endpoint.
// Top-level entries have a nil ParentID.
type Category struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ParentID uuid.UUID `json:"parent_id,omitempty"`
}

// CategoryNode is a reshaped parent category carrying its children.
// Trees are one level deep; children never have children of their own.
type CategoryNode struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Children []CategoryNode `json:"children,omitempty"`
}

func (n CategoryNode) HasChildren() bool {
	return len(n.Children) > 0
}
