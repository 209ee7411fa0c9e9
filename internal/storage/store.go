package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/programORdie2/verletlab/internal/experiment"
	"github.com/programORdie2/verletlab/internal/verlet"
)

// Store persists headless runs, one directory per run: metadata.json,
// a per-frame series.csv and the final particle state in
// particles.csv.
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
	ID        string             `json:"id"`
	Label     string             `json:"label"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Frames    int                `json:"frames"`
	Particles int                `json:"particles"`
	Config    verlet.Config      `json:"config"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one finished run and returns its generated id.
func (s *Store) Save(label string, cfg verlet.Config, dt float64, ps []verlet.Particle, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		Dt:        dt,
		Frames:    result.FramesRun,
		Particles: len(ps),
		Config:    cfg,
		Metrics:   result.Metrics,
	}

	if err := writeJSONFile(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := ExportCSVFile(filepath.Join(runDir, "series.csv"), result); err != nil {
		return "", err
	}
	if err := writeParticlesCSV(filepath.Join(runDir, "particles.csv"), ps); err != nil {
		return "", err
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads back the per-frame series of a run: times plus one
// named column per recorded quantity.
func (s *Store) LoadSeries(runID string) (map[string][]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return map[string][]float64{}, []float64{}, nil
	}

	header := records[0]
	times := make([]float64, 0, len(records)-1)
	series := make(map[string][]float64, len(header)-1)
	for _, name := range header[1:] {
		series[name] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for i, name := range header[1:] {
			val, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				val = 0
			}
			series[name] = append(series[name], val)
		}
	}

	return series, times, nil
}

// LoadParticles reads back the final particle state of a run.
func (s *Store) LoadParticles(runID string) ([]verlet.Particle, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "particles.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	ps := make([]verlet.Particle, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		ps = append(ps, verlet.Particle{
			Pos:  verlet.Vec2{X: vals[0], Y: vals[1]},
			Prev: verlet.Vec2{X: vals[2], Y: vals[3]},
		})
	}

	return ps, nil
}

func writeJSONFile(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeParticlesCSV(path string, ps []verlet.Particle) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "prev_x", "prev_y"}); err != nil {
		return err
	}
	for i := range ps {
		row := []string{
			strconv.FormatFloat(ps[i].Pos.X, 'f', 6, 64),
			strconv.FormatFloat(ps[i].Pos.Y, 'f', 6, 64),
			strconv.FormatFloat(ps[i].Prev.X, 'f', 6, 64),
			strconv.FormatFloat(ps[i].Prev.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
