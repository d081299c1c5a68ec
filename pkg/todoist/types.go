package todoist

import "encoding/json"

// Snapshot is the full account state returned by one bulk sync call.
// The schema is fixed: unknown upstream keys are dropped on decode
// instead of being carried along blindly.
type Snapshot struct {
	Items         []*Item        `json:"items"`
	Projects      []Project      `json:"projects"`
	Collaborators []Collaborator `json:"collaborators"`
	User          *User          `json:"user"`

	// Completed is populated only when an archived export was requested.
	Completed *Completed `json:"completed,omitempty"`
}

// Usable reports whether the decoded payload carries anything an export
// can work with. A 2xx response that decodes to an empty shell is
// treated the same as a failed fetch.
func (s *Snapshot) Usable() bool {
	return s != nil && s.User != nil
}

// Item is a single task record.
//
// The reference fields (ProjectID and the three user roles) are typed
// as any: denormalization replaces their numeric ids with display-name
// strings in place, and an unresolved id becomes nil. Labels is any for
// the same reason — CSV sanitization collapses the slice into one
// quoted string, or nil when empty.
type Item struct {
	ID            int64  `json:"id"`
	Content       string `json:"content"`
	Labels        any    `json:"labels,omitempty"`
	ProjectID     any    `json:"project_id"`
	SectionID     any    `json:"section_id,omitempty"`
	ParentID      any    `json:"parent_id,omitempty"`
	Priority      int    `json:"priority,omitempty"`
	Due           *Due   `json:"due,omitempty"`
	Checked       bool   `json:"checked"`
	DateAdded     string `json:"date_added,omitempty"`
	DateCompleted string `json:"date_completed,omitempty"`

	AssignedByUID  any `json:"assigned_by_uid,omitempty"`
	AddedByUID     any `json:"added_by_uid,omitempty"`
	ResponsibleUID any `json:"responsible_uid,omitempty"`
}

// Due is a task due descriptor.
type Due struct {
	Date        string `json:"date,omitempty"`
	String      string `json:"string,omitempty"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// Project is a lookup entity: id plus display name.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Collaborator is a lookup entity for the user-role references.
type Collaborator struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

// User is the account descriptor carried in every snapshot.
type User struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name,omitempty"`
	Email     string `json:"email,omitempty"`
	IsPremium bool   `json:"is_premium"`
}

// Completed is the flat concatenation of all completed-task pages, in
// server order. It marshals under a "results" key in the JSON export.
type Completed struct {
	Results []*Item `json:"results"`
}

// CompletedPage is one bounded batch of completed tasks plus the
// continuation cursor; an empty cursor marks the final page.
type CompletedPage struct {
	Results    []*Item `json:"items"`
	NextCursor string  `json:"next_cursor"`
}

// RefID extracts an integer id from a reference field. It returns false
// for nil and for already-resolved (string) values, which is what makes
// denormalization idempotent.
func RefID(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		id, err := n.Int64()
		return id, err == nil
	default:
		return 0, false
	}
}
