package ui

import (
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/tix/pkg/model"
)

func TestCreateDialog_RequiresFields(t *testing.T) {
	d := NewCreateDialog(TestTheme())
	if d.Mode() != DialogCreate {
		t.Fatalf("mode = %v", d.Mode())
	}
	if _, err := d.Ticket(); err == nil {
		t.Fatal("empty form produced a ticket")
	}

	d.subject = "  New laptop  "
	d.priority = model.PriorityMedium
	d.description = "For the new hire"
	tk, err := d.Ticket()
	if err != nil {
		t.Fatalf("Ticket: %v", err)
	}
	if tk.Subject != "New laptop" {
		t.Errorf("subject = %q, want trimmed", tk.Subject)
	}
	if tk.Status != model.StatusOpen {
		t.Errorf("new ticket status = %q, want Open", tk.Status)
	}
	if tk.ID != 0 {
		t.Errorf("new ticket carries id %d", tk.ID)
	}
}

func TestEditDialog_PatchHoldsChangedFields(t *testing.T) {
	orig := sampleTicket()
	d := NewEditDialog(orig, TestTheme())
	if d.Mode() != DialogEdit {
		t.Fatalf("mode = %v", d.Mode())
	}

	p, err := d.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if p.ID != orig.ID || !p.IsEmpty() {
		t.Errorf("untouched form produced patch %+v", p)
	}

	d.status = model.StatusDone
	p, err = d.Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if p.Status == nil || *p.Status != model.StatusDone {
		t.Fatalf("status not in patch: %+v", p)
	}
	if p.Subject != nil || p.Priority != nil {
		t.Errorf("unchanged fields in patch: %+v", p)
	}

	d.description = " "
	if _, err := d.Patch(); err == nil {
		t.Error("blank description accepted")
	}
}

func TestDialog_State(t *testing.T) {
	d := NewEditDialog(sampleTicket(), TestTheme())
	if d.Submitted() || d.Cancelled() {
		t.Fatal("fresh dialog is already finished")
	}
	d.form.State = huh.StateAborted
	if !d.Cancelled() || d.Submitted() {
		t.Error("aborted form not reported as cancelled")
	}
	d.form.State = huh.StateCompleted
	if !d.Submitted() || d.Cancelled() {
		t.Error("completed form not reported as submitted")
	}
}
