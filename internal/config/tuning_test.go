package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning(t *testing.T) {
	tn := DefaultTuning()
	if tn.PageConfidenceFloor != 0.55 {
		t.Errorf("PageConfidenceFloor = %v, want 0.55", tn.PageConfidenceFloor)
	}
	if tn.BuilderConfidenceFloor != 0.6 {
		t.Errorf("BuilderConfidenceFloor = %v, want 0.6", tn.BuilderConfidenceFloor)
	}
	if tn.MaxOutlineItems != 40 {
		t.Errorf("MaxOutlineItems = %v, want 40", tn.MaxOutlineItems)
	}
	if len(tn.DomainKeywords) == 0 {
		t.Error("expected default domain keywords")
	}
}

func TestLoadTuningOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	yaml := "max_outline_items: 10\nbold_bonus: 0.5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	tn, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tn.MaxOutlineItems != 10 {
		t.Errorf("MaxOutlineItems = %v, want 10", tn.MaxOutlineItems)
	}
	if tn.BoldBonus != 0.5 {
		t.Errorf("BoldBonus = %v, want 0.5", tn.BoldBonus)
	}
	// Fields absent from the file keep their defaults.
	if tn.PageConfidenceFloor != 0.55 {
		t.Errorf("PageConfidenceFloor = %v, want default 0.55", tn.PageConfidenceFloor)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing tuning file")
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-2")
	t.Setenv("TOP_SECTIONS", "0")
	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.TopSections != 10 {
		t.Errorf("TopSections = %d, want 10", cfg.TopSections)
	}
}
