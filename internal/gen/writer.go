package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"naught-generator/internal/analyze"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Write renders entries with g and writes the result into the configured
// output directory. It returns the path of the written file.
func (g *Generator) Write(entries []analyze.Entry) (string, error) {
	file, err := g.Generate(entries)
	if err != nil {
		return "", err
	}

	if err := WriteFiles([]GeneratedFile{*file}, g.config.OutputDir); err != nil {
		return "", err
	}

	path := filepath.Join(g.config.OutputDir, file.Filename)
	g.config.Logger.Info().Str("path", path).Int("surfaces", len(entries)).Msg("wrote surfaces")

	return path, nil
}
