package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
	"github.com/stoewer/go-strcase"

	"naught-generator/internal/analyze"
	"naught-generator/internal/common"
	"naught-generator/internal/manifest"
	"naught-generator/naught"
)

// NaughtPkg is the import path of the runtime package referenced by
// generated code.
const NaughtPkg = "naught-generator/naught"

// HeaderComment is written at the top of every generated file.
const HeaderComment = "Code generated by naught-gen. DO NOT EDIT."

// IndexVar is the name of the generated map of all surfaces.
const IndexVar = "Surfaces"

// ErrNoEntries is returned when there is nothing to generate.
var ErrNoEntries = errors.New("no surfaces to generate")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// Logger receives progress and failure events.
	Logger zerolog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: manifest.DefaultPackage,
		OutputDir:   manifest.DefaultOutput,
		Filename:    manifest.DefaultFilename,
		Logger:      zerolog.Nop(),
	}
}

// ConfigFromManifest returns the default configuration overridden by the
// output settings of m.
func ConfigFromManifest(m *manifest.Manifest) GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	if m == nil {
		return cfg
	}

	if m.Package != "" {
		cfg.PackageName = m.Package
	}
	if m.Output != "" {
		cfg.OutputDir = m.Output
	}
	if m.Filename != "" {
		cfg.Filename = m.Filename
	}

	return cfg
}

// Generator generates Go code from selected surfaces.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "naught_surfaces.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file declaring a surface variable per entry.
// Entries are emitted sorted by type ID regardless of input order.
func (g *Generator) Generate(entries []analyze.Entry) (*GeneratedFile, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	sorted := make([]analyze.Entry, len(entries))
	copy(sorted, entries)
	analyze.SortEntries(sorted)

	f := jen.NewFile(g.config.PackageName)
	f.HeaderComment(HeaderComment)
	f.ImportName(NaughtPkg, "naught")

	names := VarNames(sorted)

	for i, e := range sorted {
		f.Commentf("%s mimics %s.", names[i], e.ID)
		f.Var().Id(names[i]).Op("=").Qual(NaughtPkg, "Surface").Values(surfaceDict(e.Surface))
		f.Line()
	}

	f.Commentf("%s indexes every generated surface by qualified type name.", IndexVar)
	f.Var().Id(IndexVar).Op("=").Map(jen.String()).Qual(NaughtPkg, "Surface").Values(
		jen.DictFunc(func(d jen.Dict) {
			for i, e := range sorted {
				d[jen.Lit(e.ID.String())] = jen.Id(names[i])
			}
		}),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		g.config.Logger.Error().Err(err).Int("surfaces", len(sorted)).Msg("failed to render surfaces")

		if dumpErr := writeDebugDump(g.config.OutputDir, g.config.Filename, err, sorted); dumpErr != nil {
			g.config.Logger.Warn().Err(dumpErr).Msg("failed to write debug dump")
		}

		return nil, fmt.Errorf("rendering %s: %w", g.config.Filename, err)
	}

	g.config.Logger.Debug().
		Str("file", g.config.Filename).
		Int("surfaces", len(sorted)).
		Msg("generated surfaces")

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  buf.Bytes(),
	}, nil
}

// VarNames returns the generated variable name of each entry, in order.
// Names that collide after camel-casing get the smallest numeric suffix,
// starting at 2, that no earlier entry was given.
func VarNames(entries []analyze.Entry) []string {
	out := make([]string, len(entries))
	issued := make(map[string]struct{}, len(entries))

	for i, e := range entries {
		base := strcase.UpperCamelCase(common.PkgAlias(e.ID.PkgPath) + "_" + e.ID.Name)

		name := base
		for n := 2; ; n++ {
			if _, taken := issued[name]; !taken {
				break
			}
			name = base + strconv.Itoa(n)
		}
		issued[name] = struct{}{}

		out[i] = name
	}

	return out
}

// surfaceDict returns the composite literal fields of s. Zero fields are omitted.
func surfaceDict(s naught.Surface) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"): jen.Lit(s.Name),
	}

	if s.PkgPath != "" {
		d[jen.Id("PkgPath")] = jen.Lit(s.PkgPath)
	}

	if len(s.Methods) > 0 {
		methods := make([]jen.Code, 0, len(s.Methods))
		for _, m := range s.Methods {
			methods = append(methods, jen.Lit(m))
		}
		d[jen.Id("Methods")] = jen.Index().String().Values(methods...)
	}

	if len(s.Embeds) > 0 {
		embeds := make([]jen.Code, 0, len(s.Embeds))
		for _, e := range s.Embeds {
			embeds = append(embeds, jen.Values(surfaceDict(e)))
		}
		d[jen.Id("Embeds")] = jen.Index().Qual(NaughtPkg, "Surface").Values(embeds...)
	}

	if s.Comparable {
		d[jen.Id("Comparable")] = jen.True()
	}

	return d
}
