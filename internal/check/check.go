// Package check provides store diagnostics for the `naming check`
// command: where the store directory resolves from, whether it is
// usable, and whether the persisted documents decode.
package check

import (
	"os"

	"github.com/xileflig/naming/internal/config"
	"github.com/xileflig/naming/internal/registry"
	"github.com/xileflig/naming/internal/store"
)

// Logger is the minimal logging interface needed by Run. Defined here so
// check stays decoupled from the concrete logger.
type Logger interface {
	Info(msg any, kv ...any)
	Warn(msg any, kv ...any)
	Error(msg any, kv ...any)
}

// Run prints store diagnostics. It is informational only and does not
// stop on failure; it returns false when any check failed.
func Run(cfg *config.Config, log Logger) bool {
	ok := true

	source := "default"
	if os.Getenv(config.EnvStorePath) != "" {
		source = config.EnvStorePath
	}
	log.Info("store directory", "path", cfg.StoreDir, "source", source)

	info, err := os.Stat(cfg.StoreDir)
	switch {
	case err != nil:
		log.Warn("store directory does not exist yet; it is created on first save")
	case !info.IsDir():
		log.Error("store path exists but is not a directory")
		ok = false
	default:
		if !writable(cfg.StoreDir) {
			log.Error("store directory is not writable")
			ok = false
		}
	}

	driver := store.NewJSONDriver(cfg.StoreDir)
	docs, err := driver.Load()
	if err != nil {
		log.Error("cannot read store documents", "err", err)
		return false
	}
	if len(docs) == 0 {
		log.Info("store is empty")
		return ok
	}
	for _, key := range []string{store.KeyFields, store.KeyProfiles, store.KeyActiveProfile} {
		if _, present := docs[key]; !present {
			log.Warn("store document missing", "key", key)
		}
	}

	reg := registry.New(driver)
	if err := reg.Load(); err != nil {
		log.Error("stored state does not decode", "err", err)
		return false
	}
	log.Info("stored state decodes",
		"fields", len(reg.Fields()),
		"profiles", len(reg.Profiles()),
		"active", activeName(reg))
	return ok
}

func activeName(reg *registry.Registry) string {
	if p := reg.ActiveProfile(); p != nil {
		return p.Name()
	}
	return "(none)"
}

// writable probes dir with a throwaway file; permission bits alone are
// unreliable across mounts.
func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".naming-check-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
