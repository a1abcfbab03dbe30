package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yusufkecer/jarosmart-backend/internal/prefs"
)

func main() {
	store := prefs.NewFileStore(prefsPath())
	if err := newRootCmd(store, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prefsPath() string {
	if p := os.Getenv("JAROSMART_PREFS"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jarosmart/prefs.yaml"
	}
	return filepath.Join(home, ".jarosmart", "prefs.yaml")
}
