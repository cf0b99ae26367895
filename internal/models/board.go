package models

import (
	"sort"
	"strings"
	"sync"
)

const (
	GroupCount = 12
	GroupSize  = 4
)

// StudentRecord holds both evaluation flags of one student
type StudentRecord struct {
	Name       string
	Praised    bool
	Criticized bool
}

// Flag returns the flag that belongs to mode
func (sr StudentRecord) Flag(mode Mode) bool {
	if mode == ModeCriticism {
		return sr.Criticized
	}
	return sr.Praised
}

// ChangeKind identifies what part of the board changed
type ChangeKind int

const (
	SubjectChanged ChangeKind = iota
	ModeChanged
	StudentChanged
	BoardReset
	SavedStateChanged
)

// Change is delivered to board listeners. Student is set only for StudentChanged.
type Change struct {
	Kind    ChangeKind
	Student string
}

// ChangeListener observes board mutations
type ChangeListener func(Change)

// Board is the in-memory praise/criticism state. The roster is fixed at
// construction; subject, mode and flags change through the methods below.
type Board struct {
	mu        sync.RWMutex
	subject   string
	mode      Mode
	roster    []string
	students  map[string]*StudentRecord
	modified  bool
	listeners []ChangeListener
}

// NewBoard builds a board for the given roster. Blank names are skipped;
// a repeated name is a validation error.
func NewBoard(names []string) (*Board, error) {
	b := &Board{
		subject:  DefaultSubject(),
		mode:     ModePraise,
		roster:   make([]string, 0, len(names)),
		students: make(map[string]*StudentRecord, len(names)),
	}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, exists := b.students[name]; exists {
			return nil, NewValidationError("student", name, "duplicate name in roster")
		}
		b.roster = append(b.roster, name)
		b.students[name] = &StudentRecord{Name: name}
	}

	return b, nil
}

// Subscribe registers a listener for every subsequent change
func (b *Board) Subscribe(listener ChangeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
}

func (b *Board) notify(changes ...Change) {
	b.mu.RLock()
	listeners := make([]ChangeListener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, change := range changes {
		for _, listener := range listeners {
			listener(change)
		}
	}
}

// Subject returns the active subject label
func (b *Board) Subject() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.subject
}

// SetSubject selects one of Subjects
func (b *Board) SetSubject(subject string) error {
	if !IsSubject(subject) {
		return NewValidationError("subject", subject, "not a known subject")
	}

	b.mu.Lock()
	if b.subject == subject {
		b.mu.Unlock()
		return nil
	}
	b.subject = subject
	b.modified = true
	b.mu.Unlock()

	b.notify(Change{Kind: SubjectChanged})
	return nil
}

// Mode returns the mode new toggles apply to
func (b *Board) Mode() Mode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// SetMode switches the active mode. Flags already set in the other mode
// are kept; only the displayed marks change.
func (b *Board) SetMode(mode Mode) error {
	if !mode.Valid() {
		return NewValidationError("mode", mode, "must be praise or criticism")
	}

	b.mu.Lock()
	if b.mode == mode {
		b.mu.Unlock()
		return nil
	}
	b.mode = mode
	b.modified = true
	b.mu.Unlock()

	b.notify(Change{Kind: ModeChanged})
	return nil
}

// Toggle flips the active-mode flag of a student and returns the new value
func (b *Board) Toggle(name string) (bool, error) {
	b.mu.Lock()
	record, exists := b.students[name]
	if !exists {
		b.mu.Unlock()
		return false, ErrUnknownStudent
	}

	var value bool
	if b.mode == ModeCriticism {
		record.Criticized = !record.Criticized
		value = record.Criticized
	} else {
		record.Praised = !record.Praised
		value = record.Praised
	}
	b.modified = true
	b.mu.Unlock()

	b.notify(Change{Kind: StudentChanged, Student: name})
	return value, nil
}

// Student returns a copy of one record
func (b *Board) Student(name string) (StudentRecord, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, exists := b.students[name]
	if !exists {
		return StudentRecord{}, false
	}
	return *record, true
}

// Students returns copies of all records in roster order
func (b *Board) Students() []StudentRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]StudentRecord, 0, len(b.roster))
	for _, name := range b.roster {
		records = append(records, *b.students[name])
	}
	return records
}

// Roster returns the student names in file order
func (b *Board) Roster() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	roster := make([]string, len(b.roster))
	copy(roster, b.roster)
	return roster
}

// Groups splits the first GroupCount*GroupSize names into display groups.
// Trailing groups are short or empty when the roster is smaller.
func (b *Board) Groups() [][]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	groups := make([][]string, GroupCount)
	for i := range groups {
		start := i * GroupSize
		end := start + GroupSize
		if start > len(b.roster) {
			start = len(b.roster)
		}
		if end > len(b.roster) {
			end = len(b.roster)
		}
		groups[i] = append([]string(nil), b.roster[start:end]...)
	}
	return groups
}

// IsModified reports unsaved changes since the last load or save
func (b *Board) IsModified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// MarkSaved clears the modified flag after a successful save
func (b *Board) MarkSaved() {
	b.mu.Lock()
	changed := b.modified
	b.modified = false
	b.mu.Unlock()

	if changed {
		b.notify(Change{Kind: SavedStateChanged})
	}
}

// Snapshot captures the board as a saveable session
func (b *Board) Snapshot() Session {
	b.mu.RLock()
	defer b.mu.RUnlock()

	session := Session{
		Subject:  b.subject,
		Mode:     b.mode,
		Students: make(map[string]StudentFlags, len(b.students)),
	}
	for name, record := range b.students {
		session.Students[name] = StudentFlags{
			Praise:    record.Praised,
			Criticism: record.Criticized,
		}
	}
	return session
}

// Apply replaces the board state with a loaded session and clears the
// modified flag. Roster students absent from the session reset to
// false/false. Names not on the roster are returned and otherwise ignored.
func (b *Board) Apply(session Session) ([]string, error) {
	subject := session.Subject
	if subject == "" {
		subject = DefaultSubject()
	}
	if !IsSubject(subject) {
		return nil, NewValidationError("subject", subject, "not a known subject")
	}

	mode := session.Mode
	if mode == "" {
		mode = ModePraise
	}
	if !mode.Valid() {
		return nil, NewValidationError("mode", mode, "must be praise or criticism")
	}

	var unknown []string
	for name := range session.Students {
		if _, onRoster := b.students[name]; !onRoster {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	b.mu.Lock()
	b.subject = subject
	b.mode = mode
	for name, record := range b.students {
		flags := session.Students[name]
		record.Praised = flags.Praise
		record.Criticized = flags.Criticism
	}
	b.modified = false
	b.mu.Unlock()

	b.notify(Change{Kind: BoardReset})
	return unknown, nil
}
