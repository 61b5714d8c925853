package identity

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Provider hands out the anonymous user id for this installation. The
// id is client-generated, never validated server-side beyond being
// non-empty, and carries no cryptographic meaning.
type Provider interface {
	UserID() (string, error)
}

// FileProvider persists the generated id to a file and reuses it on
// every later call, the way the browser client keeps it in
// localStorage: generate if absent, persist, reuse.
type FileProvider struct {
	path   string
	mu     *sync.Mutex
	cached string
}

var _ Provider = (*FileProvider)(nil)

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{
		path: path,
		mu:   &sync.Mutex{},
	}
}

func (p *FileProvider) UserID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, nil
	}

	raw, err := os.ReadFile(p.path)
	if err == nil {
		id := strings.TrimSpace(string(raw))
		if id != "" {
			p.cached = id
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := os.WriteFile(p.path, []byte(id), 0600); err != nil {
		return "", err
	}

	p.cached = id
	return id, nil
}
