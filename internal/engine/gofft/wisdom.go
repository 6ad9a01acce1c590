package gofft

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// WisdomKey identifies a transform problem for wisdom lookups.
type WisdomKey struct {
	Kind     Kind
	Size     int
	Sign     int
	Features uint64
}

// WisdomEntry records the strategy chosen for a problem and the rigor it
// was measured with.
type WisdomEntry struct {
	Key       WisdomKey
	Algorithm Strategy
	Rigor     int
	Timestamp time.Time
}

// Wisdom is a concurrency-safe store of measured strategies.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]WisdomEntry
}

// NewWisdom returns an empty store.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]WisdomEntry)}
}

// Store adds or replaces the entry for entry.Key.
func (w *Wisdom) Store(entry WisdomEntry) {
	w.mu.Lock()
	w.entries[entry.Key] = entry
	w.mu.Unlock()
}

// Lookup returns the entry for key.
func (w *Wisdom) Lookup(key WisdomKey) (WisdomEntry, bool) {
	w.mu.RLock()
	entry, ok := w.entries[key]
	w.mu.RUnlock()

	return entry, ok
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes every entry.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	clear(w.entries)
	w.mu.Unlock()
}

// Export writes one line per entry, sorted by kind, size and sign:
//
//	kind:size:sign:features:algorithm:rigor:timestamp
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	entries := make([]WisdomEntry, 0, len(w.entries))
	for _, e := range w.entries {
		entries = append(entries, e)
	}
	w.mu.RUnlock()

	slices.SortFunc(entries, func(a, b WisdomEntry) int {
		return cmp.Or(
			cmp.Compare(a.Key.Kind, b.Key.Kind),
			cmp.Compare(a.Key.Size, b.Key.Size),
			cmp.Compare(a.Key.Sign, b.Key.Sign),
			cmp.Compare(a.Key.Features, b.Key.Features),
		)
	})

	bw := bufio.NewWriter(out)
	for _, e := range entries {
		_, err := fmt.Fprintf(bw, "%s:%d:%d:%d:%s:%s:%d\n",
			e.Key.Kind, e.Key.Size, e.Key.Sign, e.Key.Features,
			e.Algorithm, rigorName(e.Rigor), e.Timestamp.Unix())
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import reads entries written by Export. Blank lines and lines starting
// with '#' are skipped. Entries are merged into the store; nothing is
// stored if any line is malformed.
func (w *Wisdom) Import(in io.Reader) error {
	var parsed []WisdomEntry

	scanner := bufio.NewScanner(in)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		entry, err := parseWisdomLine(text)
		if err != nil {
			return fmt.Errorf("wisdom line %d: %w", line, err)
		}

		parsed = append(parsed, entry)
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	for _, e := range parsed {
		w.entries[e.Key] = e
	}
	w.mu.Unlock()

	return nil
}

func parseWisdomLine(text string) (WisdomEntry, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 7 {
		return WisdomEntry{}, fmt.Errorf("expected 7 fields, got %d", len(fields))
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return WisdomEntry{}, err
	}

	size, err := strconv.Atoi(fields[1])
	if err != nil || size < 1 {
		return WisdomEntry{}, fmt.Errorf("invalid size %q", fields[1])
	}

	sign, err := strconv.Atoi(fields[2])
	if err != nil || (sign != -1 && sign != 1) {
		return WisdomEntry{}, fmt.Errorf("invalid sign %q", fields[2])
	}

	features, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("invalid feature mask %q", fields[3])
	}

	algorithm, err := ParseStrategy(fields[4])
	if err != nil {
		return WisdomEntry{}, err
	}

	rigor, err := parseRigor(fields[5])
	if err != nil {
		return WisdomEntry{}, err
	}

	ts, err := strconv.ParseInt(fields[6], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("invalid timestamp %q", fields[6])
	}

	return WisdomEntry{
		Key:       WisdomKey{Kind: kind, Size: size, Sign: sign, Features: features},
		Algorithm: algorithm,
		Rigor:     rigor,
		Timestamp: time.Unix(ts, 0),
	}, nil
}

var rigorNames = []string{"estimate", "measure", "patient", "exhaustive"}

func rigorName(level int) string {
	if level < 0 || level >= len(rigorNames) {
		return "unknown"
	}

	return rigorNames[level]
}

func parseRigor(s string) (int, error) {
	if i := slices.Index(rigorNames, s); i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("unknown rigor %q", s)
}
