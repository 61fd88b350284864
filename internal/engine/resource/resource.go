// Package resource handles loading of terrain assets with polled ready state.
package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/veld/internal/engine/texture"
	"github.com/Faultbox/veld/internal/logger"
	"github.com/Faultbox/veld/pkg/formats"
)

// State is the lifecycle state of a resource. Consumers poll it once per
// frame instead of registering callbacks.
type State int

// Resource states.
const (
	StateEmpty State = iota
	StateLoading
	StateReady
	StateFailure
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailure:
		return "failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Texture is a height texture resource.
type Texture struct {
	path string

	mu        sync.Mutex
	state     State
	err       error
	heightMap *texture.HeightMap
}

// Path returns the resource path.
func (t *Texture) Path() string { return t.path }

// State returns the current lifecycle state.
func (t *Texture) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the load error, if any.
func (t *Texture) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// HeightMap returns the decoded height map, or nil until ready.
func (t *Texture) HeightMap() *texture.HeightMap {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateReady {
		return nil
	}
	return t.heightMap
}

// Mesh is a binary mesh resource.
type Mesh struct {
	path string

	mu    sync.Mutex
	state State
	err   error
	mesh  *formats.Mesh
}

// Path returns the resource path.
func (m *Mesh) Path() string { return m.path }

// State returns the current lifecycle state.
func (m *Mesh) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the load error, if any.
func (m *Mesh) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Mesh returns the parsed mesh, or nil until ready.
func (m *Mesh) Mesh() *formats.Mesh {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return nil
	}
	return m.mesh
}

// Manager loads and caches resources by path. Loads run on background
// goroutines; results are observed by polling State.
type Manager struct {
	root string

	mu       sync.Mutex
	textures map[string]*Texture
	meshes   map[string]*Mesh
}

// NewManager creates a manager rooted at the given asset directory.
func NewManager(root string) *Manager {
	return &Manager{
		root:     root,
		textures: make(map[string]*Texture),
		meshes:   make(map[string]*Mesh),
	}
}

// Root returns the asset root directory.
func (m *Manager) Root() string { return m.root }

// LoadTexture starts loading a height texture, or returns the existing
// handle for the path.
func (m *Manager) LoadTexture(path string) *Texture {
	m.mu.Lock()
	if t, ok := m.textures[path]; ok {
		m.mu.Unlock()
		return t
	}
	t := &Texture{path: path, state: StateLoading}
	m.textures[path] = t
	m.mu.Unlock()

	go func() {
		data, err := os.ReadFile(filepath.Join(m.root, path))
		if err == nil {
			var hm *texture.HeightMap
			hm, err = texture.DecodeHeightMap(data)
			if err == nil {
				t.mu.Lock()
				t.heightMap = hm
				t.state = StateReady
				t.mu.Unlock()
				return
			}
		}
		logger.Error("height texture load failed", zap.String("path", path), zap.Error(err))
		t.mu.Lock()
		t.err = err
		t.state = StateFailure
		t.mu.Unlock()
	}()
	return t
}

// LoadMesh starts loading a binary mesh, or returns the existing handle
// for the path.
func (m *Manager) LoadMesh(path string) *Mesh {
	m.mu.Lock()
	if h, ok := m.meshes[path]; ok {
		m.mu.Unlock()
		return h
	}
	h := &Mesh{path: path, state: StateLoading}
	m.meshes[path] = h
	m.mu.Unlock()

	go func() {
		data, err := os.ReadFile(filepath.Join(m.root, path))
		if err == nil {
			var mesh *formats.Mesh
			mesh, err = formats.ParseMesh(data)
			if err == nil {
				h.mu.Lock()
				h.mesh = mesh
				h.state = StateReady
				h.mu.Unlock()
				return
			}
		}
		logger.Error("mesh load failed", zap.String("path", path), zap.Error(err))
		h.mu.Lock()
		h.err = err
		h.state = StateFailure
		h.mu.Unlock()
	}()
	return h
}
