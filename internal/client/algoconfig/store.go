package algoconfig

import (
	"errors"

	"algoconfig/internal/models"
)

// Status is the request lifecycle of the cached collection.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Store is a disposable read cache of the server's collection with
// optimistic merge-on-write. It is an explicit state machine: every
// request cycles idle/succeeded/failed -> loading -> succeeded|failed,
// and each transition is a method so tests can assert on the state
// after any single step. The server stays canonical; a fresh fetch
// replaces everything here.
type Store struct {
	List        []models.AlgoConfig
	Selected    *models.AlgoConfig
	Status      Status
	Err         string
	FieldErrors map[string]string
	LastSaved   string
}

func NewStore() *Store {
	return &Store{Status: StatusIdle}
}

// BeginFetch starts a list or get request.
func (s *Store) BeginFetch() {
	s.Status = StatusLoading
	s.Err = ""
}

// BeginSave starts a create or update request; a new edit session
// clears stale per-field feedback.
func (s *Store) BeginSave() {
	s.Status = StatusLoading
	s.FieldErrors = nil
}

// FetchSucceeded replaces the cache wholesale with the server list.
func (s *Store) FetchSucceeded(list []models.AlgoConfig) {
	s.Status = StatusSucceeded
	s.List = list
}

// CreateSucceeded prepends the canonical record so the newest entry
// tops the list, and marks it for transient highlighting.
func (s *Store) CreateSucceeded(item models.AlgoConfig) {
	s.Status = StatusSucceeded
	s.List = append([]models.AlgoConfig{item}, s.List...)
	s.LastSaved = item.ID
}

// UpdateSucceeded replaces the matching cached record in place.
func (s *Store) UpdateSucceeded(item models.AlgoConfig) {
	s.Status = StatusSucceeded
	for i := range s.List {
		if s.List[i].ID == item.ID {
			s.List[i] = item
			break
		}
	}
	s.LastSaved = item.ID
}

// DeleteSucceeded drops the record from the cache.
func (s *Store) DeleteSucceeded(id string) {
	s.Status = StatusSucceeded
	for i := range s.List {
		if s.List[i].ID == id {
			s.List = append(s.List[:i], s.List[i+1:]...)
			break
		}
	}
	if s.LastSaved == id {
		s.LastSaved = ""
	}
}

// Fail records a request failure. A server reply with field errors
// feeds per-field form feedback; anything else (including transport
// failures) becomes the general error message.
func (s *Store) Fail(err error) {
	s.Status = StatusFailed
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.FieldErrors) > 0 {
		s.FieldErrors = apiErr.FieldErrors
		return
	}
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		s.Err = apiErr.Message
		return
	}
	s.Err = err.Error()
}

func (s *Store) SetSelected(item *models.AlgoConfig) { s.Selected = item }

func (s *Store) ClearSelected() { s.Selected = nil }

func (s *Store) ClearErrors() {
	s.Err = ""
	s.FieldErrors = nil
}
