// Package index orchestrates the scan→read→fingerprint→store pipeline that
// turns a directory tree into a persisted index.
package index

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/harrison/codelens/internal/classify"
	"github.com/harrison/codelens/internal/filelock"
	"github.com/harrison/codelens/internal/ignore"
	"github.com/harrison/codelens/internal/logger"
	"github.com/harrison/codelens/internal/scan"
	"github.com/harrison/codelens/internal/store"
)

// lockTimeout bounds how long Index/Clear wait for the exclusive index lock
// before giving up, so a wedged writer cannot block a caller forever.
const lockTimeout = 30 * time.Second

// Indexer orchestrates scanning and storage for one index directory.
type Indexer struct {
	storage  *store.Store
	ignore   *ignore.Matcher
	logger   *logger.Logger
	lockPath string
}

// New returns an Indexer writing to storage at indexPath, skipping paths
// matched by m. A nil logger is replaced by a warn-level logger on stderr.
func New(storage *store.Store, indexPath string, m *ignore.Matcher, log *logger.Logger) *Indexer {
	if log == nil {
		log = logger.New(os.Stderr, "warn")
	}
	return &Indexer{
		storage:  storage,
		ignore:   m,
		logger:   log,
		lockPath: filepath.Join(indexPath, ".codelens.lock"),
	}
}

type readResult struct {
	file    scan.File
	content string
	size    int64
	modTime time.Time
	skipped bool
}

// Index runs one indexing pass over root: scans eligible files, reads them
// concurrently, then fingerprints them and upserts changed files in scan order.
// It returns the freshly computed statistics, which are also persisted.
func (ix *Indexer) Index(root string) (store.IndexStats, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return store.IndexStats{}, fmt.Errorf("resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return store.IndexStats{}, ErrNotADirectory
	}

	lock := filelock.NewFileLock(ix.lockPath)
	if err := lock.LockWithTimeout(lockTimeout); err != nil {
		return store.IndexStats{}, fmt.Errorf("acquire index lock: %w", err)
	}
	defer lock.Unlock()

	files, err := scan.Scan(abs, ix.ignore)
	if err != nil {
		return store.IndexStats{}, fmt.Errorf("scan: %w", err)
	}

	results := ix.readAll(files)

	stats := store.IndexStats{Languages: map[string]int{}, RunID: uuid.NewString()}
	for _, r := range results {
		if r.skipped {
			continue
		}

		fingerprint := fingerprint(r.content)
		language := classify.Classify(filepath.Ext(r.file.RelPath))

		prior, err := ix.storage.LookupFingerprint(r.file.RelPath)
		if err != nil {
			return store.IndexStats{}, fmt.Errorf("lookup fingerprint %s: %w", r.file.RelPath, err)
		}
		if prior == fingerprint {
			ix.accumulate(&stats, r.content, r.size, language)
			continue
		}

		rec := store.FileRecord{
			Path:         r.file.RelPath,
			Content:      r.content,
			Language:     language,
			Size:         r.size,
			LastModified: r.modTime,
			ContentHash:  fingerprint,
			IndexedAt:    time.Now(),
		}
		if err := ix.storage.Upsert(rec); err != nil {
			return store.IndexStats{}, fmt.Errorf("upsert %s: %w", r.file.RelPath, err)
		}
		ix.accumulate(&stats, r.content, r.size, language)
	}

	stats.LastIndexed = time.Now()
	stats.IndexVersion = store.IndexVersion
	if err := ix.storage.PutStats(stats); err != nil {
		return store.IndexStats{}, fmt.Errorf("put stats: %w", err)
	}
	return stats, nil
}

func (ix *Indexer) accumulate(stats *store.IndexStats, content string, size int64, language string) {
	stats.TotalFiles++
	stats.TotalLines += strings.Count(content, "\n") + 1
	stats.TotalSize += size
	stats.Languages[language]++
}

// readAll reads and decodes every scanned file using a bounded worker pool,
// preserving scan order in the returned slice so upserts apply in that order.
func (ix *Indexer) readAll(files []scan.File) []readResult {
	results := make([]readResult, len(files))

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = ix.readOne(files[idx])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (ix *Indexer) readOne(f scan.File) readResult {
	raw, err := os.ReadFile(f.AbsPath)
	if err != nil {
		ix.logger.Warnf("skip %s: read failed: %v", f.RelPath, err)
		return readResult{file: f, skipped: true}
	}

	content := decodeText(raw)

	info, err := os.Stat(f.AbsPath)
	if err != nil {
		ix.logger.Warnf("skip %s: stat failed: %v", f.RelPath, err)
		return readResult{file: f, skipped: true}
	}

	return readResult{
		file:    f,
		content: content,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
}

// decodeText tries UTF-8 first, then treats the bytes as Latin-1 (ISO-8859-1),
// where every byte maps directly onto the identically numbered code point.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

func fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}

// Clear wipes the index under the same exclusive lock used by Index.
func (ix *Indexer) Clear() error {
	lock := filelock.NewFileLock(ix.lockPath)
	if err := lock.LockWithTimeout(lockTimeout); err != nil {
		return fmt.Errorf("acquire index lock: %w", err)
	}
	defer lock.Unlock()

	return ix.storage.Clear()
}

// Reconcile removes stored records whose path no longer exists under root or
// is now excluded by the ignore matcher, restoring parity after files are
// deleted or moved outside the scanned tree between indexing passes.
func (ix *Indexer) Reconcile(root string) (int, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("resolve root: %w", err)
	}

	stored, err := ix.storage.Enumerate("")
	if err != nil {
		return 0, fmt.Errorf("enumerate: %w", err)
	}

	removed := 0
	for _, rel := range stored {
		full := filepath.Join(abs, filepath.FromSlash(rel))
		if _, err := os.Stat(full); err == nil && !ix.ignore.Ignored(full, abs) {
			continue
		}
		if err := ix.storage.Delete(rel); err != nil {
			return removed, fmt.Errorf("delete %s: %w", rel, err)
		}
		removed++
	}
	return removed, nil
}
