// Package forms holds the edit state behind the event and additional
// service screens. A form is either listing records or holding a draft
// for one record being created, edited or viewed.
package forms

import (
	"errors"
	"sort"
	"strings"
)

type Mode string

const (
	ModeList   Mode = "list"
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

var (
	ErrNoHallsAvailable  = errors.New("no halls available")
	ErrReadOnly          = errors.New("form is read-only")
	ErrInvalidTransition = errors.New("invalid form transition")
)

// Confirm gates a destructive action on the record it would affect.
type Confirm[T any] func(T) bool

// Always approves every confirmation.
func Always[T any]() Confirm[T] {
	return func(T) bool { return true }
}

// ValidationError carries one message per rejected draft field.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// machine tracks the list/create/edit/view mode shared by every form.
type machine struct {
	mode Mode
}

func (m *machine) Mode() Mode {
	if m.mode == "" {
		return ModeList
	}
	return m.mode
}

func (m *machine) open(to Mode) error {
	if m.Mode() != ModeList {
		return ErrInvalidTransition
	}
	m.mode = to
	return nil
}

func (m *machine) editable() error {
	switch m.Mode() {
	case ModeCreate, ModeEdit:
		return nil
	case ModeView:
		return ErrReadOnly
	}
	return ErrInvalidTransition
}

func (m *machine) reset() {
	m.mode = ModeList
}
