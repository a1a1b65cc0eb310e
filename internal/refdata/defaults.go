package refdata

import (
	"bytes"
	_ "embed"
	"os"
	"sync"
)

// Default datasets shipped with the binary. A config file can point at
// alternative CSVs; the format contract is identical.
var (
	//go:embed data/emission_factors.csv
	defaultFactors []byte

	//go:embed data/per_capita_monthly.csv
	defaultBaselines []byte
)

var (
	defaultOnce  sync.Once //nolint:gochecknoglobals // Guards the process-lifetime default store.
	defaultStore *Store    //nolint:gochecknoglobals // Memoized default store.
	defaultErr   error     //nolint:gochecknoglobals // Memoized load failure, re-surfaced on every access.
)

// Default returns the process-wide store built from the embedded
// datasets. The load runs once; a failure is remembered and returned on
// every subsequent call rather than retried.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Load(
			bytes.NewReader(defaultFactors),
			bytes.NewReader(defaultBaselines),
		)
	})
	return defaultStore, defaultErr
}

// Open loads a store from CSV files on disk. Used when the config
// overrides the embedded datasets.
func Open(factorPath, baselinePath string) (*Store, error) {
	factorFile, err := os.Open(factorPath)
	if err != nil {
		return nil, err
	}
	defer factorFile.Close()

	baselineFile, err := os.Open(baselinePath)
	if err != nil {
		return nil, err
	}
	defer baselineFile.Close()

	return Load(factorFile, baselineFile)
}
