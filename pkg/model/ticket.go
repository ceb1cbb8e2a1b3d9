// Package model defines the ticket domain types shared by the store, the
// data feed and the UI.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Priority is the urgency of a ticket.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// AllPriorities returns the priorities in display order.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts user input to a Priority (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	for _, p := range AllPriorities() {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Status is the workflow state of a ticket.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// AllStatuses returns the statuses in workflow order.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusDone}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts user input to a Status. Besides the display values it
// accepts the snake_case and squashed spellings of "In Progress".
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "open":
		return StatusOpen, nil
	case "in progress", "in_progress", "inprogress", "in-progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Ticket is a single row of the list.
type Ticket struct {
	ID          int      `json:"id"`
	Subject     string   `json:"subject"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Description string   `json:"description"`
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks that every required field is present and that priority and
// status hold known values. All problems are reported, joined.
func (t Ticket) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Subject) == "" {
		errs = append(errs, &FieldError{Field: "subject", Reason: "is required"})
	}
	if t.Priority == "" {
		errs = append(errs, &FieldError{Field: "priority", Reason: "is required"})
	} else if !t.Priority.IsValid() {
		errs = append(errs, &FieldError{Field: "priority", Reason: fmt.Sprintf("has unknown value %q", t.Priority)})
	}
	if t.Status == "" {
		errs = append(errs, &FieldError{Field: "status", Reason: "is required"})
	} else if !t.Status.IsValid() {
		errs = append(errs, &FieldError{Field: "status", Reason: fmt.Sprintf("has unknown value %q", t.Status)})
	}
	if strings.TrimSpace(t.Description) == "" {
		errs = append(errs, &FieldError{Field: "description", Reason: "is required"})
	}
	return errors.Join(errs...)
}

// TicketPatch is a partial update addressed by ID. Nil fields are left alone.
type TicketPatch struct {
	ID          int
	Subject     *string
	Priority    *Priority
	Status      *Status
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TicketPatch) IsEmpty() bool {
	return p.Subject == nil && p.Priority == nil && p.Status == nil && p.Description == nil
}

// Apply returns a copy of t with the patch's non-nil fields replaced.
// The ID is never changed.
func (t Ticket) Apply(p TicketPatch) Ticket {
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}

// PatchFrom builds a patch that sets every field of t.
func PatchFrom(t Ticket) TicketPatch {
	subject, priority, status, description := t.Subject, t.Priority, t.Status, t.Description
	return TicketPatch{
		ID:          t.ID,
		Subject:     &subject,
		Priority:    &priority,
		Status:      &status,
		Description: &description,
	}
}

// Diff returns a patch holding only the fields of next that differ from t.
func (t Ticket) Diff(next Ticket) TicketPatch {
	p := TicketPatch{ID: t.ID}
	if next.Subject != t.Subject {
		v := next.Subject
		p.Subject = &v
	}
	if next.Priority != t.Priority {
		v := next.Priority
		p.Priority = &v
	}
	if next.Status != t.Status {
		v := next.Status
		p.Status = &v
	}
	if next.Description != t.Description {
		v := next.Description
		p.Description = &v
	}
	return p
}
