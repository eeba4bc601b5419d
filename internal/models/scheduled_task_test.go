package models

import (
	"testing"
	"time"
)

func TestNextDueOneTime(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := ScheduledTask{TaskType: ScheduledTaskTypeOneTime, Due: due}

	if got := task.NextDue(); !got.Equal(due) {
		t.Errorf("NextDue = %v; want %v", got, due)
	}
}

func TestNextDueRecurring(t *testing.T) {
	interval := "FREQ=DAILY"
	task := ScheduledTask{
		TaskType:          ScheduledTaskTypeRecurring,
		Due:               time.Now().Add(-48 * time.Hour),
		RecurringInterval: &interval,
	}

	next := task.NextDue()
	if !next.After(time.Now().Add(-time.Minute)) {
		t.Errorf("NextDue = %v; want a time at or after now", next)
	}
}

func TestNextDueInvalidRule(t *testing.T) {
	interval := "not-an-rrule"
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := ScheduledTask{
		TaskType:          ScheduledTaskTypeRecurring,
		Due:               due,
		RecurringInterval: &interval,
	}

	if got := task.NextDue(); !got.Equal(due) {
		t.Errorf("NextDue with invalid rule = %v; want fallback to %v", got, due)
	}
}

func TestNodeBeforeCreateDefaults(t *testing.T) {
	n := &Node{Title: "invoices", UserID: 1}
	if err := n.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if n.ID == "" {
		t.Error("BeforeCreate did not assign an id")
	}
	if n.CType != NodeTypeFolder {
		t.Errorf("CType = %q; want folder default", n.CType)
	}

	doc := &Node{Title: "scan.pdf", UserID: 1, CType: NodeTypeDocument}
	if err := doc.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if doc.CType != NodeTypeDocument {
		t.Errorf("CType = %q; want document preserved", doc.CType)
	}
	if !doc.IsDocument() || doc.IsFolder() {
		t.Error("type predicates disagree with ctype")
	}
}
