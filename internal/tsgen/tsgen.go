package tsgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crossliquid/contract-tools/internal/broadcast"
)

// Render produces the full contents of the generated TypeScript source file:
// a single exported constant with one property per chain, each record
// pretty-printed with two-space indentation. The whole file is built in
// memory so callers can fail before touching the filesystem.
func Render(set *broadcast.Set) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("export const deployedContracts = {\n")
	for _, entry := range set.Entries() {
		buf.WriteString("  ")
		buf.WriteString(entry.ChainID)
		buf.WriteString(": ")
		if err := json.Indent(&buf, entry.Record, "", "  "); err != nil {
			return nil, fmt.Errorf("formatting record for chain %s: %w", entry.ChainID, err)
		}
		buf.WriteString(",\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Write creates the output file's parent directories if needed and writes
// the rendered body in one shot.
func Write(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
