package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// TokenStore persists the credential token in a small JSON file, the CLI's
// stand-in for browser local storage. A present token proves nothing: only a
// successful identity resolution establishes validity.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// Load returns the persisted token, or "" when none is stored.
func (t *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parsing token file: %w", err)
	}
	return f.AccessToken, nil
}

// Save replaces the persisted token.
func (t *TokenStore) Save(token string) error {
	data, err := json.Marshal(tokenFile{AccessToken: token})
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is not an error.
func (t *TokenStore) Clear() error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}
