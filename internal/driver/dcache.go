package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"sharpswift/internal/diag"
	"sharpswift/internal/source"
)

// Current schema version - increment when cacheEntry format changes
const diskCacheSchemaVersion uint16 = 2

// CacheKey addresses one converted file: content hash plus settings.
type CacheKey [sha256.Size]byte

// DiskCache хранит результаты конвертации по хешу содержимого и настроек.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cacheEntry struct {
	Schema      uint16
	Text        string
	Includes    []string
	Diagnostics []cachedDiagnostic
}

// cachedDiagnostic drops notes and keeps offsets only; the file id is
// reassigned on restore.
type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

func newCacheEntry(res *Result) *cacheEntry {
	entry := &cacheEntry{Schema: diskCacheSchemaVersion, Text: res.Text, Includes: res.Includes}
	bag := res.Bag
	for _, d := range bag.Items() {
		entry.Diagnostics = append(entry.Diagnostics, cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return entry
}

func (e *cacheEntry) restore(bag *diag.Bag, id source.FileID) {
	for _, d := range e.Diagnostics {
		bag.Add(diag.New(diag.Severity(d.Severity), diag.Code(d.Code),
			source.Span{File: id, Start: d.Start, End: d.End}, d.Message))
	}
}

// cacheKey mixes the effective indentation settings and the diagnostic cap
// into the key: command-line flags such as --noindent and --max-diagnostics
// override the config after Fingerprint was computed.
func cacheKey(f *source.File, opts Options) CacheKey {
	h := sha256.New()
	h.Write(f.Hash[:])
	h.Write([]byte(opts.Fingerprint))
	fmt.Fprintf(h, "\x00indent=%t/%d/%t", opts.ApplyIndentation, opts.Indent.IndentWidth, opts.Indent.UseTabs)
	fmt.Fprintf(h, "\x00maxdiag=%d", opts.MaxDiagnostics)
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "locate cache directory")
		}
		base = dir
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache directory")
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "swift", hexKey[:2], hexKey+".mp")
}

// Store serializes and writes an entry.
func (c *DiskCache) Store(key CacheKey, entry *cacheEntry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Lookup reads an entry. Unreadable or outdated entries count as misses.
func (c *DiskCache) Lookup(key CacheKey) (*cacheEntry, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	var entry cacheEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil || entry.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &entry, true
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "swift"))
}
