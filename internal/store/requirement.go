package store

import "strings"

// Requirement is a single advancement requirement in the den's catalog.
// Requirements are grouped into adventures by the Adventure field; an
// adventure is "required" when its requirements are tagged Required.
type Requirement struct {
	ID          string `csv:"req_id" json:"req_id"`
	Adventure   string `csv:"adventure" json:"adventure"`
	Description string `csv:"requirement_description" json:"requirement_description"`
	Required    bool   `csv:"required" json:"required"`

	// URL is an optional reference link (handbook page, video).
	URL string `csv:"url" json:"url,omitempty"`
}

// ReqIDList is an ordered, de-duplicated list of requirement IDs.
// Meetings store the requirements they cover as a comma-joined string in
// CSV; order is preserved because it is user-visible in meeting plans.
type ReqIDList []string

// NewReqIDList builds a list from the given IDs, trimming whitespace and
// dropping empties and duplicates while preserving first-seen order.
func NewReqIDList(ids ...string) ReqIDList {
	list := make(ReqIDList, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		list = append(list, id)
	}
	return list
}

// ParseReqIDList parses a comma-joined coverage field. A blank field yields
// an empty list, never an error.
func ParseReqIDList(s string) ReqIDList {
	if strings.TrimSpace(s) == "" {
		return ReqIDList{}
	}
	return NewReqIDList(strings.Split(s, ",")...)
}

// Contains reports whether id is in the list.
func (l ReqIDList) Contains(id string) bool {
	for _, have := range l {
		if have == id {
			return true
		}
	}
	return false
}

// String returns the comma-joined CSV form.
func (l ReqIDList) String() string {
	return strings.Join(l, ",")
}

// Clone returns an independent copy.
func (l ReqIDList) Clone() ReqIDList {
	return append(ReqIDList{}, l...)
}
