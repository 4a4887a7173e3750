// Package cache implements a JSON-file-backed device.Cache, remembering
// which USB product id was last detected so future runs can skip the full
// platform probe and USB enumeration.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const fileName = "razer-ctl.json"

// entry is the on-disk representation of the cached device.
type entry struct {
	PID   uint16 `json:"pid"`
	Name  string `json:"name,omitempty"`
	Model string `json:"model,omitempty"`
}

// FileCache persists the cached device under the user's config directory.
// It satisfies device.Cache.
type FileCache struct {
	path string
}

// New returns a FileCache rooted at os.UserConfigDir()/razer-ctl/razer-ctl.json.
func New() (*FileCache, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &FileCache{path: filepath.Join(dir, "razer-ctl", fileName)}, nil
}

// NewAt returns a FileCache rooted at an explicit directory, bypassing
// os.UserConfigDir(); primarily useful for tests.
func NewAt(dir string) *FileCache {
	return &FileCache{path: filepath.Join(dir, fileName)}
}

func (c *FileCache) read() (entry, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return entry{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return entry{}, false
	}
	return e, true
}

// CachedPID returns the last-cached PID, if any.
func (c *FileCache) CachedPID() (uint16, bool) {
	e, ok := c.read()
	if !ok || e.PID == 0 {
		return 0, false
	}
	return e.PID, true
}

// SetCachedDevice persists pid/name/model, creating the config directory if
// necessary.
func (c *FileCache) SetCachedDevice(pid uint16, name, model string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry{PID: pid, Name: name, Model: model}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// ClearCachedDevice removes the cache file. Removing an already-absent file
// is not an error.
func (c *FileCache) ClearCachedDevice() error {
	err := os.Remove(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
