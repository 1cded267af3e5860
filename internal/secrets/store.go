// Package secrets keeps small per-user secrets (session token, signing key)
// in a 0600 file with AES-GCM obfuscation. Not a replacement for OS
// keychains, but keeps tokens out of plain-text config.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const fileName = "secrets.json"

// ErrNotFound is returned when no secret is stored under a name.
var ErrNotFound = errors.New("secret not found")

// Well-known entry names.
const (
	SessionToken = "session-token"
	SigningKey   = "signing-key"
)

type secretFile struct {
	Entries map[string]string `json:"entries"` // name -> base64(ciphertext)
}

// Store is a file-backed secret store rooted at Dir.
type Store struct {
	Dir string
	mu  sync.Mutex
}

// New returns a store in dir, falling back to the user config dir.
func New(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "navshell")
		}
	}
	return &Store{Dir: dir}
}

func (s *Store) Put(name, value string) error {
	if name = norm(name); name == "" {
		return fmt.Errorf("secret name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path, err := s.filePath()
	if err != nil {
		return err
	}
	sf, _ := load(path)
	if sf.Entries == nil {
		sf.Entries = map[string]string{}
	}
	ct, err := encrypt([]byte(value))
	if err != nil {
		return err
	}
	sf.Entries[name] = base64.StdEncoding.EncodeToString(ct)
	return save(path, sf)
}

func (s *Store) Get(name string) (string, error) {
	if name = norm(name); name == "" {
		return "", fmt.Errorf("secret name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path, err := s.filePath()
	if err != nil {
		return "", err
	}
	sf, err := load(path)
	if err != nil {
		return "", err
	}
	enc, ok := sf.Entries[name]
	if !ok {
		return "", ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	pt, err := decrypt(raw)
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", name, err)
	}
	return string(pt), nil
}

// Delete removes name. Deleting a missing entry is not an error.
func (s *Store) Delete(name string) error {
	if name = norm(name); name == "" {
		return fmt.Errorf("secret name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path, err := s.filePath()
	if err != nil {
		return err
	}
	sf, err := load(path)
	if err != nil {
		return err
	}
	if _, ok := sf.Entries[name]; !ok {
		return nil
	}
	delete(sf.Entries, name)
	return save(path, sf)
}

func (s *Store) filePath() (string, error) {
	if s.Dir == "" {
		return "", fmt.Errorf("secrets dir not set")
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil { // restrict directory
		return "", err
	}
	return filepath.Join(s.Dir, fileName), nil
}

func load(path string) (secretFile, error) {
	var sf secretFile
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return secretFile{}, nil
		}
		return sf, err
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, err
	}
	return sf, nil
}

func save(path string, sf secretFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func norm(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

func masterKey() []byte {
	base := fmt.Sprintf("navshell-%s-%s", runtime.GOOS, os.Getenv("USER"))
	hash := sha256.Sum256([]byte(base))
	return hash[:]
}

func newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(masterKey())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func encrypt(plain []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce := ciphertext[:gcm.NonceSize()]
	body := ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, body, nil)
}
