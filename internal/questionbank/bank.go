// Package questionbank provides the embedded anchor_v1.2 survey item bank.
// The bank is parsed once per process and treated as immutable afterwards,
// so concurrent requests may read it without locking.
package questionbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/anchor-insight/internal/types"
)

//go:embed anchor_v1.2.json
var bankFiles embed.FS

const bankFile = "anchor_v1.2.json"

var (
	loadOnce sync.Once
	bank     *types.QuestionBank
	loadErr  error
)

// Get returns the embedded question bank. The returned value is shared;
// callers must not mutate it.
func Get() (*types.QuestionBank, error) {
	loadOnce.Do(func() {
		data, err := bankFiles.ReadFile(bankFile)
		if err != nil {
			loadErr = fmt.Errorf("failed to read question bank %s: %w", bankFile, err)
			return
		}

		var parsed types.QuestionBank
		if err := json.Unmarshal(data, &parsed); err != nil {
			loadErr = fmt.Errorf("failed to parse question bank %s: %w", bankFile, err)
			return
		}
		bank = &parsed
	})

	return bank, loadErr
}

// MustGet returns the embedded question bank, panicking on load failure.
// Use only at initialization time.
func MustGet() *types.QuestionBank {
	b, err := Get()
	if err != nil {
		panic(fmt.Sprintf("failed to load question bank: %v", err))
	}
	return b
}
