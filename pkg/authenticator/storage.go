package authenticator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// session is the on-disk shape of a cached login. The raw ID token is kept
// next to the oauth2 token because token extras do not survive JSON.
type session struct {
	Token        *oauth2.Token `json:"token"`
	IDToken      string        `json:"idToken"`
	PKCEVerifier string        `json:"pkceVerifier,omitempty"`
}

// TokenStorage persists one session per authority/client pair under a single
// directory. The entry key is oidc.user:<authority>:<clientID>; forcing a
// re-login removes exactly that entry.
type TokenStorage struct {
	dir string
}

func NewTokenStorage(dir string) *TokenStorage {
	return &TokenStorage{dir: dir}
}

func StorageKey(authority, clientID string) string {
	return fmt.Sprintf("oidc.user:%s:%s", authority, clientID)
}

func (s *TokenStorage) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+".json")
}

func (s *TokenStorage) Load(key string) (*session, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, err
	}

	var sess session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s *TokenStorage) Store(key string, sess *session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(key), b, 0o600)
}

func (s *TokenStorage) Clear(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
