package song

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"fretwise/internal/parser"
	"fretwise/internal/theory"
)

// Current schema version - increment when Payload format changes
const cacheSchemaVersion uint16 = 1

// Digest identifies a song file by the SHA-256 of its contents.
type Digest [sha256.Size]byte

// Fingerprint hashes a song file for use as a cache key.
func Fingerprint(path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(data), nil
}

// Cache stores resolved songs on disk keyed by file digest, so reopening an
// unchanged song skips re-resolution. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt initializes a disk cache rooted at an explicit directory.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

type cachedEntry struct {
	Symbol  string
	Bars    uint16
	Root    int8
	Quality uint8
	Failed  bool
	Code    uint16
	Message string
}

// Payload is the serialized form of a resolved song.
type Payload struct {
	Schema  uint16
	Title   string
	Key     string
	Mode    uint8
	Tempo   uint16
	Entries []cachedEntry
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "songs", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *Cache) Put(key Digest, payload *Payload) error {
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
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the disk cache. Returns false on a miss or on a
// schema mismatch.
func (c *Cache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// EncodePayload converts a resolved song into its cacheable form.
func EncodePayload(s Song, entries []ResolvedEntry) (*Payload, error) {
	tempo, err := safecast.Conv[uint16](s.Tempo)
	if err != nil {
		return nil, err
	}
	payload := &Payload{
		Schema:  cacheSchemaVersion,
		Title:   s.Title,
		Key:     s.Key,
		Mode:    uint8(s.Mode),
		Tempo:   tempo,
		Entries: make([]cachedEntry, 0, len(entries)),
	}
	for _, e := range entries {
		bars, err := safecast.Conv[uint16](e.Bars)
		if err != nil {
			return nil, err
		}
		root, err := safecast.Conv[int8](int(e.Chord.Root))
		if err != nil {
			return nil, err
		}
		payload.Entries = append(payload.Entries, cachedEntry{
			Symbol:  e.Symbol,
			Bars:    bars,
			Root:    root,
			Quality: uint8(e.Chord.Quality),
			Failed:  e.Failed,
			Code:    uint16(e.Code),
			Message: e.Message,
		})
	}
	return payload, nil
}

// DecodePayload rebuilds resolved entries from their cached form.
func DecodePayload(p *Payload) []ResolvedEntry {
	out := make([]ResolvedEntry, 0, len(p.Entries))
	for _, e := range p.Entries {
		re := ResolvedEntry{
			Symbol:  e.Symbol,
			Bars:    int(e.Bars),
			Failed:  e.Failed,
			Message: e.Message,
		}
		if e.Failed {
			re.Code = parser.Code(e.Code)
		} else {
			re.Chord = theory.NewChord(theory.PitchClass(e.Root), theory.Quality(e.Quality))
		}
		out = append(out, re)
	}
	return out
}
