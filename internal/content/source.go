package content

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"setlist/internal/logging"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// Source loads a set document from disk on first use and keeps the
// normalized result (or the failure) for the lifetime of the process.
type Source struct {
	path string

	once        sync.Once
	set         *Set
	fingerprint string
	err         error
}

// NewSource returns a lazy source for the document at path. Nothing is read
// until Set is called.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the document path.
func (s *Source) Path() string {
	return s.path
}

// Set returns the normalized set, loading it on the first call.
func (s *Source) Set() (*Set, error) {
	s.once.Do(s.load)
	return s.set, s.err
}

// Fingerprint returns the BLAKE3 hash of the bytes the set was loaded from,
// or "" before the first successful read.
func (s *Source) Fingerprint() string {
	s.once.Do(s.load)
	return s.fingerprint
}

func (s *Source) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.err = fmt.Errorf("failed to read set document: %w", err)
		return
	}
	s.fingerprint = Fingerprint(data)

	doc, err := DecodeDocument(s.path, data)
	if err != nil {
		s.err = fmt.Errorf("failed to decode %s: %w", s.path, err)
		logging.ContentError("%v", s.err)
		return
	}

	set, err := NormalizeSet(doc)
	if err != nil {
		s.err = fmt.Errorf("failed to normalize %s: %w", s.path, err)
		logging.ContentError("%v", s.err)
		return
	}
	s.set = set
	logging.Content("loaded %s: %d items, fingerprint %s", s.path, len(set.Items), s.fingerprint[:12])
}

// DecodeDocument decodes data according to the extension of name: .json,
// .yaml or .yml, each optionally followed by .xz.
func DecodeDocument(name string, data []byte) (Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".xz" {
		plain, err := decompressXZ(data)
		if err != nil {
			return Document{}, err
		}
		data = plain
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}

	var doc Document
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedFormat, ext)
	}
	logging.ContentDebug("decoded %s: %d raw items", name, len(doc.Items))
	return doc, nil
}

func decompressXZ(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress xz stream: %w", err)
	}
	return plain, nil
}

// Fingerprint returns the hex BLAKE3-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
