package resumes

import "time"

// Resume is a stored generated resume. Content is the serialized
// document produced by the generator; the store never interprets it.
type Resume struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewResume carries the caller-supplied fields for Create. UserID is
// trusted from the caller; it is not validated against the users table.
type NewResume struct {
	UserID  int64
	Title   string
	Content string
	Prompt  string
}
