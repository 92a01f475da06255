package document

import "time"

// Author is embedded in a Document; it has no lifecycle of its own.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the stored record. Stored values are never mutated in place:
// every update builds a new Document and swaps it into the store.
// A nil Author means "no author"; a zero Created means "unset".
type Document struct {
	ID      string    `json:"id,omitempty"`
	Title   string    `json:"title"`
	Content string    `json:"content,omitempty"`
	Author  *Author   `json:"author,omitempty"`
	Created time.Time `json:"created"`
}

// Clone returns a deep copy so callers cannot reach into stored state
// through the Author pointer.
func (d Document) Clone() Document {
	if d.Author != nil {
		a := *d.Author
		d.Author = &a
	}
	return d
}

// Option configures a Document built with New.
type Option func(*Document)

func WithID(id string) Option {
	return func(d *Document) { d.ID = id }
}

func WithAuthor(id, name string) Option {
	return func(d *Document) { d.Author = &Author{ID: id, Name: name} }
}

func WithCreated(t time.Time) Option {
	return func(d *Document) { d.Created = t }
}

// New builds a Document from its title and content plus any optional fields.
func New(title, content string, opts ...Option) Document {
	d := Document{Title: title, Content: content}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
