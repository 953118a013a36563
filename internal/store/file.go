package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bivory/roz/internal/rozerr"
	"github.com/bivory/roz/internal/state"
)

// FileStore persists sessions as one pretty-printed JSON file per session
// under <baseDir>/sessions/<id>.json, written atomically via a temp file
// plus rename so a reader never observes a half-written file.
type FileStore struct {
	baseDir string
}

// NewFileStore creates the sessions directory under baseDir if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	dir := filepath.Join(baseDir, "sessions")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, rozerr.Storage(err, "create sessions directory %s", dir)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (f *FileStore) sessionsDir() string {
	return filepath.Join(f.baseDir, "sessions")
}

func (f *FileStore) sessionPath(id string) string {
	return filepath.Join(f.sessionsDir(), id+".json")
}

// Get reads and parses a session file. A missing file is not an error: it
// returns (nil, nil). A file that exists but fails to parse, or parses but
// is missing a session_id, is an error — unlike List, which would silently
// skip it.
func (f *FileStore) Get(sessionID string) (*state.Session, error) {
	path := f.sessionPath(sessionID)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, rozerr.Storage(err, "read session %s", sessionID)
	}

	var s state.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, rozerr.Serialization(err, "parse session %s", sessionID)
	}
	if s.SessionID == "" {
		return nil, rozerr.InvalidState("session file %s has no session_id", path)
	}
	return &s, nil
}

// Put writes the session atomically: marshal to pretty JSON, write to a
// ".tmp"-extensioned sibling (replacing, not appending to, the ".json"
// extension), then rename over the final path.
func (f *FileStore) Put(s *state.Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return rozerr.Serialization(err, "marshal session %s", s.SessionID)
	}

	path := f.sessionPath(s.SessionID)
	tmpPath := strings.TrimSuffix(path, ".json") + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return rozerr.Storage(err, "write temp file for session %s", s.SessionID)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return rozerr.Storage(err, "rename temp file for session %s", s.SessionID)
	}
	return nil
}

// List enumerates "*.json" files in the sessions directory, silently
// skipping anything that can't be read, parsed, or validated as a Session,
// and returns summaries sorted by CreatedAt descending, capped at limit.
func (f *FileStore) List(limit int) ([]SessionSummary, error) {
	entries, err := os.ReadDir(f.sessionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionSummary{}, nil
		}
		return nil, rozerr.Storage(err, "list sessions directory")
	}

	var summaries []SessionSummary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(f.sessionsDir(), entry.Name()))
		if err != nil {
			continue
		}
		var s state.Session
		if err := json.Unmarshal(data, &s); err != nil {
			continue
		}
		if s.SessionID == "" {
			continue
		}
		summaries = append(summaries, summarize(&s))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	if limit >= 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// Delete removes a session file. Deleting a session that doesn't exist is a
// no-op, not an error.
func (f *FileStore) Delete(sessionID string) error {
	err := os.Remove(f.sessionPath(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return rozerr.Storage(err, "delete session %s", sessionID)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
