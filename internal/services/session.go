package services

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"praise-board/internal/logger"
	"praise-board/internal/models"
)

// SessionService reads and writes saved board sessions
type SessionService struct {
	logger logger.Logger
}

func NewSessionService(log logger.Logger) *SessionService {
	return &SessionService{logger: log}
}

// sessionDocument mirrors models.Session with optional fields so that
// absent keys can be told apart from false values.
type sessionDocument struct {
	Subject  *string                         `json:"subject"`
	Mode     *string                         `json:"mode"`
	Students map[string]*studentFlagDocument `json:"students"`
}

type studentFlagDocument struct {
	Praise    *bool `json:"praise"`
	Criticism *bool `json:"criticism"`
}

// Encode writes session as indented UTF-8 JSON
func (ss *SessionService) Encode(w io.Writer, session models.Session) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(session); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return nil
}

// Decode parses a session document. Missing keys take defaults: subject
// falls back to the first subject, mode to praise, flags to false. Student
// names are kept verbatim; anything after the document is an error.
func (ss *SessionService) Decode(r io.Reader) (models.Session, error) {
	var doc sessionDocument
	decoder := json.NewDecoder(bufio.NewReader(r))
	if err := decoder.Decode(&doc); err != nil {
		return models.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	if err := decoder.Decode(&json.RawMessage{}); err != io.EOF {
		return models.Session{}, errors.New("failed to decode session: trailing data after document")
	}

	session := models.Session{
		Subject:  models.DefaultSubject(),
		Mode:     models.ModePraise,
		Students: make(map[string]models.StudentFlags, len(doc.Students)),
	}

	if doc.Subject != nil {
		if !models.IsSubject(*doc.Subject) {
			return models.Session{}, models.NewValidationError("subject", *doc.Subject, "not a known subject")
		}
		session.Subject = *doc.Subject
	}

	if doc.Mode != nil {
		mode, err := models.ParseMode(*doc.Mode)
		if err != nil {
			return models.Session{}, err
		}
		session.Mode = mode
	}

	for name, flags := range doc.Students {
		var state models.StudentFlags
		if flags != nil {
			if flags.Praise != nil {
				state.Praise = *flags.Praise
			}
			if flags.Criticism != nil {
				state.Criticism = *flags.Criticism
			}
		}
		session.Students[name] = state
	}

	return session, nil
}

// Save encodes session fully before touching path, so an encoding failure
// never truncates an existing file.
func (ss *SessionService) Save(path string, session models.Session) error {
	var buf bytes.Buffer
	if err := ss.Encode(&buf, session); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		ss.logger.Error("SessionService", err, map[string]interface{}{"path": path})
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	ss.logger.Info("SessionService", "session saved", map[string]interface{}{
		"path":     path,
		"students": len(session.Students),
	})
	return nil
}

// Load opens path and decodes it
func (ss *SessionService) Load(path string) (models.Session, error) {
	file, err := os.Open(path)
	if err != nil {
		ss.logger.Error("SessionService", err, map[string]interface{}{"path": path})
		return models.Session{}, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	session, err := ss.Decode(file)
	if err != nil {
		ss.logger.Error("SessionService", err, map[string]interface{}{"path": path})
		return models.Session{}, err
	}

	ss.logger.Info("SessionService", "session loaded", map[string]interface{}{
		"path":     path,
		"subject":  session.Subject,
		"mode":     string(session.Mode),
		"students": len(session.Students),
	})
	return session, nil
}
