// Package manifest loads, validates and generates the manifest document that
// describes every action the CLI exposes.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

// Document is a loaded manifest together with the bytes it was parsed from.
type Document struct {
	Manifest domain.Manifest
	Raw      []byte
	Path     string
}

// Indented returns the raw document re-indented with two spaces, preserving
// its key order.
func (d Document) Indented() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(d.Raw), "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Locator lists candidate manifest paths in lookup order.
type Locator struct {
	Paths []string
}

// DefaultLocator checks the packaged copy next to the executable first, then
// the project root one level above it.
func DefaultLocator(executable string) Locator {
	dir := filepath.Dir(executable)
	return Locator{Paths: []string{
		filepath.Join(dir, domain.ManifestFileName),
		filepath.Join(filepath.Dir(dir), domain.ManifestFileName),
	}}
}

// Resolve returns the first candidate that exists.
func (l Locator) Resolve() (string, error) {
	for _, candidate := range l.Paths {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat manifest %s: %w", candidate, err)
		}
	}
	return "", domain.E(domain.CodeManifestMissing, "manifest.resolve", "", domain.ErrManifestNotFound)
}

// Loader reads the manifest once and serves the cached document afterwards.
type Loader struct {
	locator Locator
	logger  *zap.Logger

	mu     sync.Mutex
	loaded bool
	doc    Document
	err    error
}

func NewLoader(locator Locator, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{locator: locator, logger: logger.Named("manifest")}
}

// Load returns the manifest, reading it from disk on first use only. A failed
// first load is also remembered.
func (l *Loader) Load() (Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.doc, l.err
	}
	l.doc, l.err = l.read()
	l.loaded = true
	return l.doc, l.err
}

func (l *Loader) read() (Document, error) {
	path, err := l.locator.Resolve()
	if err != nil {
		return Document{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m domain.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return Document{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	l.logger.Debug("manifest loaded", zap.String("path", path), zap.Int("actions", len(m.Actions)))
	return Document{Manifest: m, Raw: raw, Path: path}, nil
}
