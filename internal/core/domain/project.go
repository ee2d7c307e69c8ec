package domain

// ProjectStatus is the moderation state of a project.
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

// Project is an uploaded student project.
type Project struct {
	ID          int64
	Title       string
	Description string
	File        string
	Status      ProjectStatus
	OwnerID     int64
	// OwnerName is filled in by listing queries and is never written.
	OwnerName string
}
