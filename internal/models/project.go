package models

import (
	"time"
)

// Project belongs to exactly one user. Names are unique per owner and the
// owner never changes after creation.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Owner       uint      `json:"owner" gorm:"not null;uniqueIndex:idx_projects_owner_name"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_projects_owner_name"`
	Category    *int      `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// CreateProjectRequest is the payload for POST /projects/create.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Category    *int   `json:"category"`
	Description string `json:"description"`
}

// UpdateProjectRequest is the payload for PUT /projects/:id/update. Pointer
// fields distinguish "absent" from "set to zero value"; only present fields
// are applied.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *int    `json:"category"`
}
