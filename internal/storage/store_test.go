package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/sieve"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := grid.New(10)
	values := sieve.Collect(cfg.Limit())

	runID, err := st.Save(cfg, values)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Size != 10 || meta.Limit != 101 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Primes != 25 || meta.Composites != 75 {
		t.Errorf("expected 25/75, got %d/%d", meta.Primes, meta.Composites)
	}

	steps, err := st.LoadSequence(runID)
	if err != nil {
		t.Fatalf("load sequence failed: %v", err)
	}
	if len(steps) != len(values) {
		t.Fatalf("expected %d steps, got %d", len(values), len(steps))
	}
	for i, s := range steps {
		if s.Value != values[i].Value || s.Kind != values[i].Kind {
			t.Fatalf("step %d: got %+v, want %v", i, s, values[i])
		}
	}
	if s := steps[2]; s.Value != 4 || s.Row != 0 || s.Col != 3 {
		t.Errorf("unexpected step 2: %+v", s)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	for _, size := range []int{10, 12} {
		cfg := grid.New(size)
		if _, err := st.Save(cfg, sieve.Collect(cfg.Limit())); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Size != 10 || runs[1].Size != 12 {
		t.Errorf("runs out of order: %+v", runs)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoad_NotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadSequence("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestLoadSequence_BadKind(t *testing.T) {
	dir := t.TempDir()
	runDir := filepath.Join(dir, "broken")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "step,value,kind,row,col\n0,1,X,0,0\n"
	if err := os.WriteFile(filepath.Join(runDir, "sequence.csv"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir).LoadSequence("broken"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPrimeCurve(t *testing.T) {
	steps := []Step{
		{Value: 1, Kind: sieve.Composite},
		{Value: 2, Kind: sieve.Prime},
		{Value: 4, Kind: sieve.Composite},
		{Value: 3, Kind: sieve.Prime},
	}
	want := []float64{0, 1, 1, 2}
	got := PrimeCurve(steps)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrimeCurve = %v, want %v", got, want)
		}
	}
}
