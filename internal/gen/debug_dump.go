package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"naught-generator/internal/analyze"
)

// writeDebugDump writes the render error and the entries that produced it to
// a sidecar file next to the intended output. This is best-effort and should
// never make generation fail harder.
func writeDebugDump(outDir, filename string, renderErr error, entries []analyze.Entry) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	content := fmt.Sprintf("render error: %v\n\n%s", renderErr, spew.Sdump(entries))
	p := filepath.Join(outDir, strings.TrimSuffix(filename, ".go")+".debug.txt")

	return os.WriteFile(p, []byte(content), filePerm)
}
