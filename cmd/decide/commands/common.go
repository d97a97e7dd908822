// Package commands provides the decide subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/danielpatrickdp/quantum-decision/internal/store"
)

// Settings bound to the root command's persistent flags.
var (
	DBPath string
	Seed   uint64
)

func openStore() (*store.Store, error) {
	path := DBPath
	if path == "" {
		path = store.MemoryDSN
	}
	st, err := store.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("open decision log %s: %w", path, err)
	}
	return st, nil
}

// newSource seeds the process-wide generator once per command.
func newSource() *rand.Rand {
	seed := Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
