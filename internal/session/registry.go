// Package session tracks known usernames and the active session.
//
// The registry is persisted as YAML in the data directory so separate
// invocations of the CLI share the same logged-in user.
package session

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ongvang00/HealthManagementSystem/internal/filelock"
)

// FileName is the registry file inside the data directory.
const FileName = "session.yaml"

var (
	ErrUserExists  = errors.New("username already exists")
	ErrUnknownUser = errors.New("unknown username")
	ErrNoSession   = errors.New("please log in first")
)

// Session is the identity an operation runs as.
type Session struct {
	Username string
}

type state struct {
	Users   []string `yaml:"users"`
	Current string   `yaml:"current,omitempty"`
}

// Registry holds known usernames and the current user.
type Registry struct {
	path  string
	users map[string]struct{}
	cur   string
}

// New returns an empty, unsaved registry bound to path.
func New(path string) *Registry {
	return &Registry{path: path, users: map[string]struct{}{}}
}

// Load reads the registry at path. A missing file yields an empty registry.
func Load(path string) (*Registry, error) {
	r := New(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session registry: %w", err)
	}
	var st state
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse session registry %s: %w", path, err)
	}
	for _, u := range st.Users {
		r.users[u] = struct{}{}
	}
	if _, ok := r.users[st.Current]; ok {
		r.cur = st.Current
	}
	return r, nil
}

// Save writes the registry atomically under its file lock.
func (r *Registry) Save() error {
	data, err := yaml.Marshal(state{Users: r.Users(), Current: r.cur})
	if err != nil {
		return fmt.Errorf("encode session registry: %w", err)
	}
	if err := filelock.LockAndWrite(r.path, data, 0o600); err != nil {
		return fmt.Errorf("save session registry: %w", err)
	}
	return nil
}

func (r *Registry) Path() string {
	return r.path
}

// Create registers username and makes it the current user.
func (r *Registry) Create(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if _, ok := r.users[username]; ok {
		return fmt.Errorf("create user %q: %w", username, ErrUserExists)
	}
	r.users[username] = struct{}{}
	r.cur = username
	return nil
}

// Login makes a registered username the current user.
func (r *Registry) Login(username string) error {
	if _, ok := r.users[username]; !ok {
		return fmt.Errorf("log in %q: %w", username, ErrUnknownUser)
	}
	r.cur = username
	return nil
}

func (r *Registry) Logout() {
	r.cur = ""
}

func (r *Registry) Exists(username string) bool {
	_, ok := r.users[username]
	return ok
}

// Current returns the active session, if any.
func (r *Registry) Current() (Session, bool) {
	if r.cur == "" {
		return Session{}, false
	}
	return Session{Username: r.cur}, true
}

// Users returns the registered usernames in ascending order.
func (r *Registry) Users() []string {
	out := make([]string, 0, len(r.users))
	for u := range r.users {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}
