package scaffold

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglot-advent/aocgen/internal/identifier"
	"github.com/polyglot-advent/aocgen/internal/safepath"
)

func testRequest(t *testing.T, year, day int, langs ...string) Request {
	t.Helper()

	y, err := identifier.NewYear(year)
	require.NoError(t, err)
	d, err := identifier.NewDay(day)
	require.NoError(t, err)

	req := Request{Year: y, Day: d}
	for _, l := range langs {
		lang, err := identifier.NewLanguage(l)
		require.NoError(t, err)
		req.Languages = append(req.Languages, lang)
	}
	return req
}

func TestGenerate(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "Jane Doe")
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := g.Generate(&out, testRequest(t, 2024, 1, "go"), Options{})
	require.NoError(t, err)

	want := []string{
		filepath.Join("2024", "README.md"),
		filepath.Join("2024", "day01", "README.md"),
		filepath.Join("2024", "day01", "go", "main.go"),
		filepath.Join("2024", "day01", "go", "input.txt"),
	}
	assert.Equal(t, want, res.Created)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Overwritten)

	for _, rel := range want {
		_, err := os.Stat(filepath.Join(base, rel))
		assert.NoError(t, err, rel)
	}

	dayReadme, err := os.ReadFile(filepath.Join(base, "2024", "day01", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(dayReadme), "https://adventofcode.com/2024/day/1")

	yearReadme, err := os.ReadFile(filepath.Join(base, "2024", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(yearReadme), "Jane Doe")

	starter, err := os.ReadFile(filepath.Join(base, "2024", "day01", "go", "main.go"))
	require.NoError(t, err)
	assert.Contains(t, string(starter), "package main")

	input, err := os.ReadFile(filepath.Join(base, "2024", "day01", "go", "input.txt"))
	require.NoError(t, err)
	assert.Empty(t, string(input))

	assert.Contains(t, out.String(), "Created: "+filepath.Join("2024", "day01", "go", "main.go"))
}

func TestGenerateSecondRunSkips(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	req := testRequest(t, 2015, 25, "python")
	_, err = g.Generate(io.Discard, req, Options{})
	require.NoError(t, err)

	// A started solution must survive a re-run.
	mainPy := filepath.Join(base, "2015", "day25", "python", "main.py")
	require.NoError(t, os.WriteFile(mainPy, []byte("print('half done')\n"), 0644))

	var out bytes.Buffer
	res, err := g.Generate(&out, req, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	assert.Len(t, res.Skipped, 4)
	assert.Empty(t, res.Overwritten)

	got, err := os.ReadFile(mainPy)
	require.NoError(t, err)
	assert.Equal(t, "print('half done')\n", string(got))
	assert.Contains(t, out.String(), "(exists)")
}

func TestGenerateForce(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	req := testRequest(t, 2024, 3, "rust")
	_, err = g.Generate(io.Discard, req, Options{})
	require.NoError(t, err)

	mainRs := filepath.Join(base, "2024", "day03", "rust", "main.rs")
	require.NoError(t, os.WriteFile(mainRs, []byte("fn main() {}\n"), 0644))
	input := filepath.Join(base, "2024", "day03", "rust", "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("7 6 4 2 1\n"), 0644))

	var out bytes.Buffer
	res, err := g.Generate(&out, req, Options{Force: true})
	require.NoError(t, err)

	// Only the modified starter is rewritten. Unchanged files and the
	// puzzle input are left alone.
	assert.Equal(t, []string{filepath.Join("2024", "day03", "rust", "main.rs")}, res.Overwritten)
	assert.Contains(t, res.Skipped, filepath.Join("2024", "day03", "rust", "input.txt"))

	kept, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "7 6 4 2 1\n", string(kept))

	restored, err := os.ReadFile(mainRs)
	require.NoError(t, err)
	assert.Contains(t, string(restored), "part_one")

	assert.Contains(t, out.String(), "Overwrote: ")
	assert.Contains(t, out.String(), "+++ ")
}

func TestGenerateDryRun(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := g.Generate(&out, testRequest(t, 2024, 12, "go", "typescript"), Options{DryRun: true})
	require.NoError(t, err)

	assert.Len(t, res.Created, 6)
	assert.Contains(t, out.String(), "Would create: ")

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write anything")
}

func TestGenerateGenericStarter(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	_, err = g.Generate(io.Discard, testRequest(t, 2023, 7, "Zig"), Options{})
	require.NoError(t, err)

	// Folder names are lowercased, template text keeps the given casing.
	stub, err := os.ReadFile(filepath.Join(base, "2023", "day07", "zig", "solution.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(stub), "Zig")
	assert.Contains(t, string(stub), "https://adventofcode.com/2023/day/7")
}

func TestGenerateAlias(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	_, err = g.Generate(io.Discard, testRequest(t, 2022, 10, "ts"), Options{})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(base, "2022", "day10", "ts", "main.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "node:fs")
}

func TestGenerateNoLanguages(t *testing.T) {
	base := t.TempDir()
	g, err := New(base, "")
	require.NoError(t, err)

	res, err := g.Generate(io.Discard, testRequest(t, 2024, 2), Options{})
	require.NoError(t, err)
	assert.Len(t, res.Created, 2)
}

func TestNewEmptyBase(t *testing.T) {
	_, err := New("   ", "")
	assert.ErrorIs(t, err, safepath.ErrEmptyBase)
}
