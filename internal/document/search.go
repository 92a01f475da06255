package document

import (
	"strings"
	"time"
)

// SearchRequest filters documents. Every field is optional; an empty slice
// or nil bound imposes no constraint. Present criteria are ANDed together.
type SearchRequest struct {
	// TitlePrefixes: title must start with at least one of these.
	TitlePrefixes []string `json:"titlePrefixes,omitempty"`
	// ContainsContents: content must contain every one of these.
	ContainsContents []string `json:"containsContents,omitempty"`
	// AuthorIDs: author id must be one of these.
	AuthorIDs []string `json:"authorIds,omitempty"`
	// CreatedFrom and CreatedTo are both inclusive.
	CreatedFrom *time.Time `json:"createdFrom,omitempty"`
	CreatedTo   *time.Time `json:"createdTo,omitempty"`
}

// IsEmpty reports whether the request carries no criteria at all.
func (r SearchRequest) IsEmpty() bool {
	return len(r.TitlePrefixes) == 0 &&
		len(r.ContainsContents) == 0 &&
		len(r.AuthorIDs) == 0 &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil
}

// Matches reports whether d satisfies every criterion present in r.
func (r SearchRequest) Matches(d Document) bool {
	return r.matchTitle(d) &&
		r.matchContent(d) &&
		r.matchAuthor(d) &&
		r.matchCreated(d)
}

func (r SearchRequest) matchTitle(d Document) bool {
	if len(r.TitlePrefixes) == 0 {
		return true
	}
	for _, p := range r.TitlePrefixes {
		if strings.HasPrefix(d.Title, p) {
			return true
		}
	}
	return false
}

func (r SearchRequest) matchContent(d Document) bool {
	for _, s := range r.ContainsContents {
		if !strings.Contains(d.Content, s) {
			return false
		}
	}
	return true
}

func (r SearchRequest) matchAuthor(d Document) bool {
	if len(r.AuthorIDs) == 0 {
		return true
	}
	if d.Author == nil || d.Author.ID == "" {
		return false
	}
	for _, id := range r.AuthorIDs {
		if d.Author.ID == id {
			return true
		}
	}
	return false
}

func (r SearchRequest) matchCreated(d Document) bool {
	if r.CreatedFrom != nil {
		if d.Created.IsZero() || d.Created.Before(*r.CreatedFrom) {
			return false
		}
	}
	if r.CreatedTo != nil {
		if d.Created.IsZero() || d.Created.After(*r.CreatedTo) {
			return false
		}
	}
	return true
}

// WithTitlePrefixes returns a copy of r with the title prefixes appended.
func (r SearchRequest) WithTitlePrefixes(prefixes ...string) SearchRequest {
	r.TitlePrefixes = append(append([]string(nil), r.TitlePrefixes...), prefixes...)
	return r
}

// WithContainsContents returns a copy of r with the required substrings appended.
func (r SearchRequest) WithContainsContents(substrings ...string) SearchRequest {
	r.ContainsContents = append(append([]string(nil), r.ContainsContents...), substrings...)
	return r
}

// WithAuthorIDs returns a copy of r with the author ids appended.
func (r SearchRequest) WithAuthorIDs(ids ...string) SearchRequest {
	r.AuthorIDs = append(append([]string(nil), r.AuthorIDs...), ids...)
	return r
}

// WithCreatedRange returns a copy of r bounded by from and to. A zero time
// leaves that side of the range open.
func (r SearchRequest) WithCreatedRange(from, to time.Time) SearchRequest {
	r.CreatedFrom, r.CreatedTo = nil, nil
	if !from.IsZero() {
		r.CreatedFrom = &from
	}
	if !to.IsZero() {
		r.CreatedTo = &to
	}
	return r
}
