package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/sieve"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Limit      int       `json:"limit"`
	Timestamp  time.Time `json:"timestamp"`
	Primes     int       `json:"primes"`
	Composites int       `json:"composites"`
}

// Step is one row of a stored sequence.
type Step struct {
	Index int        `json:"step"`
	Value int        `json:"value"`
	Kind  sieve.Kind `json:"-"`
	Tag   string     `json:"kind"`
	Row   int        `json:"row"`
	Col   int        `json:"col"`
}

// Save stores the discovery sequence of cfg as a new run.
func (s *Store) Save(cfg grid.Config, values []sieve.ClassifiedValue) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("size%d_%d", cfg.Size(), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	primes := sieve.CountPrimes(values)
	meta := RunMetadata{
		ID:         runID,
		Size:       cfg.Size(),
		Limit:      cfg.Limit(),
		Timestamp:  now,
		Primes:     primes,
		Composites: len(values) - primes,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "sequence.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"step", "value", "kind", "row", "col"}); err != nil {
		return "", err
	}
	for i, cv := range values {
		row, col := cfg.CellPosition(cv.Value)
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(cv.Value),
			cv.Kind.Short(),
			strconv.Itoa(row),
			strconv.Itoa(col),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns stored runs, oldest first. Unreadable run directories are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode metadata of %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSequence reads back the stored steps of a run.
func (s *Store) LoadSequence(runID string) ([]Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "sequence.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read sequence of %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []Step{}, nil
	}

	steps := make([]Step, 0, len(records)-1)
	for _, rec := range records[1:] {
		var ints [4]int
		for i, field := range []string{rec[0], rec[1], rec[3], rec[4]} {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("storage: bad field %q in %s: %w", field, runID, err)
			}
			ints[i] = n
		}
		kind, ok := sieve.ParseKind(rec[2])
		if !ok {
			return nil, fmt.Errorf("storage: bad kind %q in %s", rec[2], runID)
		}
		steps = append(steps, Step{
			Index: ints[0],
			Value: ints[1],
			Kind:  kind,
			Tag:   kind.Short(),
			Row:   ints[2],
			Col:   ints[3],
		})
	}
	return steps, nil
}

// PrimeCurve returns, for every step, how many primes have been found so far.
func PrimeCurve(steps []Step) []float64 {
	out := make([]float64, len(steps))
	n := 0
	for i, st := range steps {
		if st.Kind == sieve.Prime {
			n++
		}
		out[i] = float64(n)
	}
	return out
}
