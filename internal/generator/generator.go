package generator

import (
	"context"
	"encoding/json"
)

// Generator turns a natural-language prompt plus a title into a
// serialized resume document. The storage layer treats the result as
// an opaque string, so implementations can be swapped without touching
// the store.
type Generator interface {
	Generate(ctx context.Context, prompt, title string) (string, error)
}

// Document is the fixed section schema every generator backend
// produces.
type Document struct {
	Header     Header       `json:"header"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`
	Education  Education    `json:"education"`
}

// Header captures top-of-resume contact details.
type Header struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Experience is a single role entry.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

// Education is the single education entry of the document.
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Period string `json:"period"`
}

// Encode serializes the document in the canonical indented form.
func (d Document) Encode() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
