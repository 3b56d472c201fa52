// Package vault stores the publish credential under the user's lumen data
// directory.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Credential errors.
var (
	ErrNoCredential = errors.New("no saved credential; run lumen login")
)

const credentialFile = "credential.json"

// Credential is the stored bearer token plus bookkeeping.
type Credential struct {
	Token    string    `json:"token"`
	Endpoint string    `json:"endpoint,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// Save writes the credential to dir with owner-only permissions.
func Save(dir string, cred Credential) error {
	if cred.Token == "" {
		return errors.New("token is required")
	}
	if cred.SavedAt.IsZero() {
		cred.SavedAt = time.Now().UTC()
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create vault dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	path := filepath.Join(dir, credentialFile)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write credential %s: %w", path, err)
	}
	return nil
}

// Load reads the saved credential from dir.
func Load(dir string) (*Credential, error) {
	path := filepath.Join(dir, credentialFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("read credential %s: %w", path, err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("parse credential %s: %w", path, err)
	}
	if cred.Token == "" {
		return nil, ErrNoCredential
	}
	return &cred, nil
}

// Clear removes the saved credential. Clearing an empty vault is not an error.
func Clear(dir string) error {
	path := filepath.Join(dir, credentialFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential %s: %w", path, err)
	}
	return nil
}
