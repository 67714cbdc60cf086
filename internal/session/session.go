package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Role is the signed-in user's role as reported by the login endpoint.
type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
)

// ParseRole is tolerant of casing: the upstream API has answered both
// "VENDOR" and "customer" over time.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VENDOR":
		return RoleVendor
	case "CUSTOMER":
		return RoleCustomer
	default:
		return RoleNone
	}
}

// Info is the single persisted current-user record.
type Info struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Role      Role      `json:"userRole"`
	LastLogin time.Time `json:"lastLogin"`
}

// Holder owns the current session. It is constructed once and passed to
// everything that needs identity; nothing re-reads the backing file ad hoc.
type Holder struct {
	log  *slog.Logger
	path string

	mu  sync.Mutex
	cur *Info
}

// Open loads the persisted session record if one exists. A missing or
// unreadable record means signed out, never an error surfaced to the caller.
func Open(path string, log *slog.Logger) *Holder {
	h := &Holder{log: log, path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("session record unreadable, starting signed out", slog.Any("err", err))
		}
		return h
	}

	var info Info
	if err := json.Unmarshal(raw, &info); err != nil || info.UserID == "" {
		log.Warn("session record corrupt, starting signed out", slog.String("path", path))
		return h
	}
	info.Role = ParseRole(string(info.Role))
	h.cur = &info
	return h
}

// Current returns the active session record, false when signed out.
func (h *Holder) Current() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur == nil {
		return Info{}, false
	}
	return *h.cur, true
}

// CurrentUserID returns the signed-in user's identifier, false when signed
// out. The cart store keys every remote call on this value.
func (h *Holder) CurrentUserID() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur == nil {
		return "", false
	}
	return h.cur.UserID, true
}

// Role returns the current role, RoleNone when signed out.
func (h *Holder) Role() Role {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur == nil {
		return RoleNone
	}
	return h.cur.Role
}

// Set replaces the current session and persists it.
func (h *Holder) Set(info Info) error {
	if info.UserID == "" {
		return errors.New("session: user id is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = &info

	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("commit session record: %w", err)
	}
	return nil
}

// Clear signs out and removes the persisted record.
func (h *Holder) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = nil
	if err := os.Remove(h.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}
