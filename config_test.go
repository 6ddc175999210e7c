package marina

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "marina.toml"))
	if err != nil {
		t.Fatalf("LoadConfig on a missing file = %v, want defaults", err)
	}
	if cfg.Capacity != MaxVessels {
		t.Errorf("Capacity = %d, want %d", cfg.Capacity, MaxVessels)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
	if !cfg.RateTable().Slip.Equal(M(12.50)) {
		t.Errorf("default slip rate = %s, want 12.50", cfg.RateTable().Slip.Fixed())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marina.toml")
	content := `
file = "harbor.csv"
capacity = 40

[rates]
slip = 15.00
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.File != "harbor.csv" {
		t.Errorf("File = %q, want harbor.csv", cfg.File)
	}
	if cfg.Capacity != 40 {
		t.Errorf("Capacity = %d, want 40", cfg.Capacity)
	}
	rates := cfg.RateTable()
	if !rates.Slip.Equal(M(15.00)) {
		t.Errorf("slip rate = %s, want 15.00", rates.Slip.Fixed())
	}
	// unset rates keep their defaults
	if !rates.Land.Equal(M(14.00)) {
		t.Errorf("land rate = %s, want 14.00", rates.Land.Fixed())
	}
}

func TestLoadConfig_InvalidCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marina.toml")
	if err := os.WriteFile(path, []byte("capacity = -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig with negative capacity = nil, want an error")
	}
}
