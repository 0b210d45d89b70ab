package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present
	t.Setenv(EnvStorePath, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, err := DefaultStoreDir()
	if err != nil {
		t.Fatalf("DefaultStoreDir: %v", err)
	}
	if cfg.StoreDir != def {
		t.Errorf("store dir: got %q, want %q", cfg.StoreDir, def)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("color mode: got %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.Verbose {
		t.Error("verbose should default to false")
	}
}

func TestLoadEnvOverridesStoreDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvStorePath, "/srv/naming-state")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDir != "/srv/naming-state" {
		t.Errorf("store dir: got %q, want %q", cfg.StoreDir, "/srv/naming-state")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvStorePath, "")

	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	toml := "store_dir = \"/tank/conventions\"\ncolor = \"never\"\nverbose = true\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDir != "/tank/conventions" {
		t.Errorf("store dir: got %q", cfg.StoreDir)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("color mode: got %q", cfg.ColorMode)
	}
	if !cfg.Verbose {
		t.Error("verbose should come from the config file")
	}
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvStorePath, "/env/wins")

	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"),
		[]byte("store_dir = \"/file/loses\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDir != "/env/wins" {
		t.Errorf("store dir: got %q, want %q", cfg.StoreDir, "/env/wins")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{StoreDir: "/x", ColorMode: ColorAuto}, false},
		{"bad color", Config{StoreDir: "/x", ColorMode: "rainbow"}, true},
		{"empty store dir", Config{StoreDir: "", ColorMode: ColorNever}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate: got err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
