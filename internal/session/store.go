package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/storekit/shopctl/internal/errors"
)

// Store persists the bearer token between invocations. Exactly one
// token is stored; user and role are never persisted.
type Store interface {
	// Load returns the persisted token, or "" if none is stored.
	Load() (string, error)
	// Save durably writes the token.
	Save(token string) error
	// Clear removes the persisted token. Clearing an absent token is not an error.
	Clear() error
}

// tokenFile is the on-disk layout of the persisted credential.
type tokenFile struct {
	Token string `json:"token"`
}

// FileStore stores the token as a JSON file under the shopctl home
// directory (~/.shopctl/token.json by default), mode 0600.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed token store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "token.json")}
}

// DefaultDir returns the default shopctl home directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".shopctl"), nil
}

// Load reads the persisted token. A missing file means no token.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read token file", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", errors.Wrap(errors.ErrCodeFileReadFailed, "token file is corrupt", err)
	}

	return tf.Token, nil
}

// Save writes the token, creating the parent directory if needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create shopctl directory", err)
	}

	data, err := json.MarshalIndent(tokenFile{Token: token}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to encode token", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write token file", err)
	}

	return nil
}

// Clear deletes the token file if it exists.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to remove token file", err)
	}
	return nil
}
