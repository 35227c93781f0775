package abj2016

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

type goldenConfig struct {
	Prior       string  `json:"prior"`
	Resolution  int     `json:"resolution"`
	MinDist     float64 `json:"min_dist"`
	MaxDist     float64 `json:"max_dist"`
	ScaleLength float64 `json:"scale_length"`
}

type goldenCheckpoint struct {
	Obs   int     `json:"obs"`
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

type goldenData struct {
	Description    string             `json:"description"`
	Config         goldenConfig       `json:"config"`
	Parallax       []float64          `json:"parallax"`
	ParallaxErr    []float64          `json:"parallax_err"`
	ModeDist       []float64          `json:"mode_dist"`
	MeanDist       []float64          `json:"mean_dist"`
	DistStd        []float64          `json:"dist_std"`
	MedianDist     []float64          `json:"median_dist"`
	PDFCheckpoints []goldenCheckpoint `json:"pdf_checkpoints"`
}

// goldenTol is absolute plus relative: the reference values were computed
// with the same double-precision pipeline, so agreement should be far
// tighter than this.
const goldenTol = 1e-8

func withinGoldenTol(golden, actual float64) bool {
	return math.Abs(golden-actual) <= goldenTol+goldenTol*math.Abs(golden)
}

func loadGoldenFile(t *testing.T, path string) goldenData {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	var gd goldenData
	if err := json.Unmarshal(data, &gd); err != nil {
		t.Fatalf("failed to parse golden file %s: %v", path, err)
	}
	return gd
}

func goldenConfigToConfig(gc goldenConfig) Config {
	cfg := DefaultConfig()
	cfg.Prior = Prior(gc.Prior)
	cfg.Resolution = gc.Resolution
	cfg.MinDist = gc.MinDist
	cfg.MaxDist = gc.MaxDist
	cfg.ScaleLength = gc.ScaleLength
	return cfg
}

// compareSummary reports mismatches between golden and actual summary
// slices, logging up to 5 individual errors.
func compareSummary(t *testing.T, name string, golden, actual []float64) {
	t.Helper()
	if len(golden) != len(actual) {
		t.Fatalf("%s length: golden=%d, got=%d", name, len(golden), len(actual))
	}
	mismatches := 0
	for i := range golden {
		if !withinGoldenTol(golden[i], actual[i]) {
			mismatches++
			if mismatches <= 5 {
				t.Errorf("%s[%d]: golden=%g, got=%g (diff=%g)",
					name, i, golden[i], actual[i], math.Abs(golden[i]-actual[i]))
			}
		}
	}
	if mismatches > 5 {
		t.Errorf("... and %d more %s mismatches", mismatches-5, name)
	}
}

// TestGoldenPosteriors verifies summary statistics and sampled density
// values against the reference implementation for every golden file.
func TestGoldenPosteriors(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	if err != nil {
		t.Fatalf("failed to glob testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no golden test files found in testdata/")
	}

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			gd := loadGoldenFile(t, f)
			cfg := goldenConfigToConfig(gd.Config)

			post, err := Estimate(gd.Parallax, gd.ParallaxErr, cfg)
			if err != nil {
				t.Fatalf("Estimate() error: %v", err)
			}

			compareSummary(t, "ModeDist", gd.ModeDist, post.ModeDist)
			compareSummary(t, "MeanDist", gd.MeanDist, post.MeanDist)
			compareSummary(t, "DistStd", gd.DistStd, post.DistStd)
			compareSummary(t, "MedianDist", gd.MedianDist, post.MedianDist())

			for _, cp := range gd.PDFCheckpoints {
				got := post.DistPDF[cp.Obs][cp.Index]
				if !withinGoldenTol(cp.Value, got) {
					t.Errorf("pdf[%d][%d]: golden=%g, got=%g",
						cp.Obs, cp.Index, cp.Value, got)
				}
			}
		})
	}
}
