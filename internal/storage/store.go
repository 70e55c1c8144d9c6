package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/bifurc/internal/analysis"
)

const (
	metadataFile = "metadata.json"
	outputsFile  = "outputs.csv"
)

var (
	ErrRunNotFound    = errors.New("storage: run not found")
	ErrCorruptOutputs = errors.New("storage: malformed outputs file")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes how a stored sweep was produced.
type RunMetadata struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Preset         string    `json:"preset,omitempty"`
	RMin           float64   `json:"r_min"`
	RMax           float64   `json:"r_max"`
	RSteps         int       `json:"r_steps"`
	XIn            float64   `json:"x_in"`
	Transient      int       `json:"transient"`
	Samples        int       `json:"samples"`
	Workers        int       `json:"workers"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
}

// Save writes a new run directory holding meta and the sweep outputs and
// returns the generated run id. meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, rVals []float64, outputs *analysis.Matrix) (string, error) {
	if outputs == nil || outputs.Cols() != len(rVals) {
		return "", fmt.Errorf("storage: save: %w", analysis.ErrShapeMismatch)
	}

	now := time.Now()
	runID, runDir, err := s.createRunDir(now)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now

	err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err == nil {
		err = writeFile(filepath.Join(runDir, outputsFile), func(w io.Writer) error {
			return WriteCSV(w, rVals, outputs)
		})
	}
	if err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

// writeFile creates path, fills it with write and reports a failed close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// createRunDir picks a fresh sweep_<unixnano> directory, bumping the suffix
// if two runs land on the same timestamp.
func (s *Store) createRunDir(now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	for n := now.UnixNano(); ; n++ {
		runID := fmt.Sprintf("sweep_%d", n)
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
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

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadOutputs reads back the r values and the output matrix of a run.
func (s *Store) LoadOutputs(runID string) ([]float64, *analysis.Matrix, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, outputsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}
