package storage

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/programORdie2/verletlab/internal/experiment"
	"github.com/programORdie2/verletlab/internal/verlet"
)

func testResult() *experiment.Result {
	return &experiment.Result{
		Times:  []float64{0.1, 0.2, 0.3},
		Counts: []int{1, 2, 3},
		Series: map[string][]float64{
			"kinetic_energy": {12.5, 3.25, 0.75},
			"max_speed":      {240.0, 120.5, 60.25},
		},
		Metrics: map[string]float64{
			"kinetic_energy": 0.75,
			"max_speed":      60.25,
		},
		FramesRun: 3,
	}
}

func testParticles() []verlet.Particle {
	return []verlet.Particle{
		{Pos: verlet.Vec2{X: 300.5, Y: 100.25}, Prev: verlet.Vec2{X: 298.5, Y: 100.25}},
		{Pos: verlet.Vec2{X: 310.0, Y: 420.75}, Prev: verlet.Vec2{X: 310.0, Y: 419.5}},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg := verlet.DefaultConfig()
	runID, err := store.Save("reference", cfg, 0.1, testParticles(), testResult())
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(runID, "reference_") {
		t.Errorf("runID = %q, want reference_ prefix", runID)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", runID, err)
	}
	if meta.ID != runID {
		t.Errorf("ID = %q, want %q", meta.ID, runID)
	}
	if meta.Label != "reference" {
		t.Errorf("Label = %q, want reference", meta.Label)
	}
	if meta.Frames != 3 {
		t.Errorf("Frames = %d, want 3", meta.Frames)
	}
	if meta.Particles != 2 {
		t.Errorf("Particles = %d, want 2", meta.Particles)
	}
	if meta.Config.Gravity != cfg.Gravity {
		t.Errorf("Config.Gravity = %v, want %v", meta.Config.Gravity, cfg.Gravity)
	}
	if got := meta.Metrics["kinetic_energy"]; got != 0.75 {
		t.Errorf("Metrics[kinetic_energy] = %v, want 0.75", got)
	}
}

func TestStoreList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	cfg := verlet.DefaultConfig()
	if _, err := store.Save("alpha", cfg, 0.1, testParticles(), testResult()); err != nil {
		t.Fatalf("Save(alpha) error: %v", err)
	}
	if _, err := store.Save("beta", cfg, 0.1, testParticles(), testResult()); err != nil {
		t.Fatalf("Save(beta) error: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("List() returned %d runs, want 2", len(runs))
	}

	labels := map[string]bool{}
	for _, run := range runs {
		labels[run.Label] = true
	}
	if !labels["alpha"] || !labels["beta"] {
		t.Errorf("List() labels = %v, want alpha and beta", labels)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := store.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("List() returned %d runs, want 0", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	runID, err := store.Save("reference", verlet.DefaultConfig(), 0.1, testParticles(), testResult())
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	for _, name := range []string{"metadata.json", "series.csv", "particles.csv"} {
		path := filepath.Join(dir, runID, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestLoadSeries(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	runID, err := store.Save("reference", verlet.DefaultConfig(), 0.1, testParticles(), testResult())
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	series, times, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("LoadSeries() error: %v", err)
	}
	if len(times) != 3 {
		t.Fatalf("len(times) = %d, want 3", len(times))
	}
	if math.Abs(times[2]-0.3) > 1e-6 {
		t.Errorf("times[2] = %v, want 0.3", times[2])
	}

	counts, ok := series["count"]
	if !ok {
		t.Fatal("series missing count column")
	}
	if counts[2] != 3 {
		t.Errorf("count[2] = %v, want 3", counts[2])
	}

	ke, ok := series["kinetic_energy"]
	if !ok {
		t.Fatal("series missing kinetic_energy column")
	}
	if math.Abs(ke[0]-12.5) > 1e-6 {
		t.Errorf("kinetic_energy[0] = %v, want 12.5", ke[0])
	}
}

func TestLoadParticles(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	want := testParticles()
	runID, err := store.Save("reference", verlet.DefaultConfig(), 0.1, want, testResult())
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.LoadParticles(runID)
	if err != nil {
		t.Fatalf("LoadParticles() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("LoadParticles() returned %d particles, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].Pos.X-want[i].Pos.X) > 1e-6 || math.Abs(got[i].Pos.Y-want[i].Pos.Y) > 1e-6 {
			t.Errorf("particle %d Pos = %v, want %v", i, got[i].Pos, want[i].Pos)
		}
		if math.Abs(got[i].Prev.X-want[i].Prev.X) > 1e-6 || math.Abs(got[i].Prev.Y-want[i].Prev.Y) > 1e-6 {
			t.Errorf("particle %d Prev = %v, want %v", i, got[i].Prev, want[i].Prev)
		}
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testResult()); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("ExportCSV() wrote %d lines, want 4", len(lines))
	}
	if lines[0] != "time,count,kinetic_energy,max_speed" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.100000,1,12.500000,240.000000") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, "reference", 0.1, testResult()); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	body := string(data)
	for _, want := range []string{`"label": "reference"`, `"kinetic_energy"`, `"frames": 3`} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %s", want)
		}
	}
}
