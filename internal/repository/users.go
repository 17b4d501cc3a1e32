package repository

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"public-auction/internal/auctionerrors"
	model "public-auction/internal/models"
	"public-auction/utils"
)

// MaxUsers caps the number of registered accounts.
const MaxUsers = 10

// hashSeed is the djb2 initial value.
const hashSeed = 5381

// UserDB defines credential storage for the auction system
type UserDB interface {
	Exists(username string) bool
	Lookup(username string) (model.User, bool)
	Add(user model.User) error
	All() []model.User
	Count() int
}

// HashPassword computes the demo credential hash: hash = hash*33 + byte,
// one byte at a time. It is deliberately non-cryptographic and collisions
// between different passwords are accepted, not defended against.
func HashPassword(password string) uint32 {
	hash := uint32(hashSeed)
	for i := 0; i < len(password); i++ {
		hash = hash*33 + uint32(password[i])
	}
	return hash
}

// FileUserStore is an in-memory UserDB mirrored to a flat text file with
// one "<username> <hash>" pair per line. Every successful Add rewrites the
// whole file, so the file never holds a partially-written user list.
type FileUserStore struct {
	mu    sync.RWMutex
	path  string
	users []model.User
}

// NewFileUserStore loads existing users from path. A missing or unreadable
// file yields an empty store rather than an error.
func NewFileUserStore(path string) *FileUserStore {
	s := &FileUserStore{path: path}
	s.load()
	return s
}

// load parses the user file line by line. Loading stops at the first
// malformed line or once MaxUsers entries have been read.
func (s *FileUserStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		utils.Info("user file not found, starting with no users", map[string]any{"path": s.path})
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		if len(s.users) >= MaxUsers {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			utils.Warn("malformed user line, stopping load", map[string]any{"path": s.path, "line": line})
			break
		}
		hash, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			utils.Warn("malformed user line, stopping load", map[string]any{"path": s.path, "line": line})
			break
		}
		s.users = append(s.users, model.User{Username: fields[0], PasswordHash: uint32(hash)})
	}

	utils.Info("loaded users", map[string]any{"path": s.path, "count": len(s.users)})
}

// save truncates and rewrites the whole file. Caller must hold the lock.
func (s *FileUserStore) save() error {
	var b strings.Builder
	for _, u := range s.users {
		fmt.Fprintf(&b, "%s %d\n", u.Username, u.PasswordHash)
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write user file %s: %w", s.path, err)
	}
	return nil
}

// Exists reports whether username is already taken. Matching is exact and
// case-sensitive.
func (s *FileUserStore) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(username) >= 0
}

// Lookup returns the stored user for username, if any.
func (s *FileUserStore) Lookup(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(username); i >= 0 {
		return s.users[i], true
	}
	return model.User{}, false
}

// Add appends a new user and persists the full store immediately. It fails
// when the store is at capacity, the username is taken, or the file cannot
// be rewritten; a failed write leaves the in-memory set unchanged.
func (s *FileUserStore) Add(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) >= MaxUsers {
		return fmt.Errorf("add user %s: %w", user.Username, auctionerrors.ErrStoreFull)
	}
	if s.indexOf(user.Username) >= 0 {
		return fmt.Errorf("add user %s: %w", user.Username, auctionerrors.ErrUserExists)
	}

	s.users = append(s.users, user)
	if err := s.save(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return fmt.Errorf("add user %s: %w", user.Username, err)
	}

	utils.Info("saved users", map[string]any{"path": s.path, "count": len(s.users)})
	return nil
}

// All returns a copy of the registered users in insertion order.
func (s *FileUserStore) All() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// Count returns the number of registered users.
func (s *FileUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// indexOf returns the position of username, or -1. Caller must hold a lock.
func (s *FileUserStore) indexOf(username string) int {
	for i, u := range s.users {
		if u.Username == username {
			return i
		}
	}
	return -1
}
