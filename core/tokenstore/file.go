package tokenstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// minSecretLength is the minimum secret length for AES-256 key derivation.
const minSecretLength = 32

// hkdfInfo binds derived keys to this package so the same application secret
// can be reused for other purposes without key reuse.
var hkdfInfo = []byte("clubkit/tokenstore/v1")

// File stores the token encrypted with AES-256-GCM in a single file.
// The encryption key is derived from the application secret via HKDF, so
// rotating the secret invalidates any previously stored token.
type File struct {
	mu   sync.Mutex
	path string
	key  []byte
}

// NewFile creates a file-backed token store at the given path. The secret
// must be at least 32 bytes; parent directories are created on first Set.
func NewFile(path string, secret []byte) (*File, error) {
	if len(secret) < minSecretLength {
		return nil, ErrInvalidSecret
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, hkdfInfo), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	return &File{path: path, key: key}, nil
}

func (f *File) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ciphertext, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	plaintext, err := f.decrypt(ciphertext)
	if err != nil {
		return "", errors.Join(ErrDecryptToken, err)
	}
	return string(plaintext), nil
}

func (f *File) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return ErrEmptyToken
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ciphertext, err := f.encrypt([]byte(token))
	if err != nil {
		return errors.Join(ErrStoreToken, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Join(ErrStoreToken, err)
	}

	// Write-then-rename keeps the previous token readable if the process
	// dies mid-write.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, ciphertext, 0o600); err != nil {
		return errors.Join(ErrStoreToken, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Join(ErrStoreToken, err)
	}
	return nil
}

func (f *File) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (f *File) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(f.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (f *File) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(f.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext shorter than nonce")
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, sealed, nil)
}
