package algoconfig

import (
	"errors"
	"testing"

	"algoconfig/internal/models"
)

func rec(id, name string) models.AlgoConfig {
	return models.AlgoConfig{ID: id, Name: name}
}

func TestStoreInitialState(t *testing.T) {
	s := NewStore()
	if s.Status != StatusIdle {
		t.Fatalf("status=%s want idle", s.Status)
	}
}

func TestFetchCycle(t *testing.T) {
	s := NewStore()
	s.Err = "stale"

	s.BeginFetch()
	if s.Status != StatusLoading || s.Err != "" {
		t.Fatalf("after BeginFetch: status=%s err=%q", s.Status, s.Err)
	}

	s.FetchSucceeded([]models.AlgoConfig{rec("a", "one"), rec("b", "two")})
	if s.Status != StatusSucceeded || len(s.List) != 2 {
		t.Fatalf("after FetchSucceeded: status=%s list=%v", s.Status, s.List)
	}

	// A later fetch replaces the cache wholesale.
	s.BeginFetch()
	s.FetchSucceeded([]models.AlgoConfig{rec("c", "three")})
	if len(s.List) != 1 || s.List[0].ID != "c" {
		t.Fatalf("fetch did not replace wholesale: %v", s.List)
	}
}

func TestFetchFailure(t *testing.T) {
	s := NewStore()
	s.BeginFetch()
	s.Fail(errors.New("connection refused"))
	if s.Status != StatusFailed || s.Err != "connection refused" {
		t.Fatalf("status=%s err=%q", s.Status, s.Err)
	}
}

func TestCreatePrependsAndMarksLastSaved(t *testing.T) {
	s := NewStore()
	s.FetchSucceeded([]models.AlgoConfig{rec("a", "old")})

	s.BeginSave()
	s.CreateSucceeded(rec("b", "new"))
	if s.List[0].ID != "b" {
		t.Fatalf("new record not prepended: %v", s.List)
	}
	if s.LastSaved != "b" {
		t.Fatalf("lastSaved=%q want b", s.LastSaved)
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	s := NewStore()
	s.FetchSucceeded([]models.AlgoConfig{rec("a", "one"), rec("b", "two")})

	s.BeginSave()
	s.UpdateSucceeded(rec("b", "two v2"))
	if s.List[1].Name != "two v2" {
		t.Fatalf("record not replaced in place: %v", s.List)
	}
	if s.List[0].Name != "one" {
		t.Fatalf("unrelated record mutated: %v", s.List)
	}
	if s.LastSaved != "b" {
		t.Fatalf("lastSaved=%q want b", s.LastSaved)
	}
}

func TestDeleteRemovesFromCache(t *testing.T) {
	s := NewStore()
	s.FetchSucceeded([]models.AlgoConfig{rec("a", "one"), rec("b", "two")})
	s.LastSaved = "a"

	s.DeleteSucceeded("a")
	if len(s.List) != 1 || s.List[0].ID != "b" {
		t.Fatalf("delete left %v", s.List)
	}
	if s.LastSaved != "" {
		t.Fatalf("lastSaved should clear when its record is deleted")
	}
}

func TestSaveFailureWithFieldErrors(t *testing.T) {
	s := NewStore()
	s.BeginSave()
	s.Fail(&APIError{Status: 422, FieldErrors: map[string]string{"name": "Name must be at least 2 characters."}})
	if s.Status != StatusFailed {
		t.Fatalf("status=%s want failed", s.Status)
	}
	if s.FieldErrors["name"] == "" {
		t.Fatalf("field errors not captured: %v", s.FieldErrors)
	}
	if s.Err != "" {
		t.Fatalf("general error should stay empty when field errors exist, got %q", s.Err)
	}

	// A fresh edit session clears stale per-field feedback.
	s.BeginSave()
	if s.FieldErrors != nil {
		t.Fatalf("BeginSave did not clear field errors")
	}
}

func TestSaveFailureWithServerMessage(t *testing.T) {
	s := NewStore()
	s.BeginSave()
	s.Fail(&APIError{Status: 404, Message: "Config not found."})
	if s.Err != "Config not found." {
		t.Fatalf("err=%q", s.Err)
	}
	if s.FieldErrors != nil {
		t.Fatalf("field errors should stay empty, got %v", s.FieldErrors)
	}
}

func TestClearErrors(t *testing.T) {
	s := NewStore()
	s.Err = "boom"
	s.FieldErrors = map[string]string{"name": "bad"}
	s.ClearErrors()
	if s.Err != "" || s.FieldErrors != nil {
		t.Fatalf("errors not cleared: %q %v", s.Err, s.FieldErrors)
	}
}

func TestSelected(t *testing.T) {
	s := NewStore()
	item := rec("a", "one")
	s.SetSelected(&item)
	if s.Selected == nil || s.Selected.ID != "a" {
		t.Fatalf("selected=%v", s.Selected)
	}
	s.ClearSelected()
	if s.Selected != nil {
		t.Fatalf("selected not cleared")
	}
}
