// Package build runs the one-shot site build pipeline: load themes, emit the
// styling configuration and generated CSS, render pages, write the output
// tree. Any error aborts the whole build; there is no partial output contract.
package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenlabs/lumen/internal/config"
	"github.com/lumenlabs/lumen/internal/db"
	"github.com/lumenlabs/lumen/internal/models"
	"github.com/lumenlabs/lumen/internal/site"
	"github.com/lumenlabs/lumen/internal/styling"
	"github.com/lumenlabs/lumen/internal/theme"
)

// Options configure a build run.
type Options struct {
	Config *config.Config
	Logger zerolog.Logger

	// Builds, when set, records each completed build.
	Builds *db.BuildRepository
}

// Result summarizes a completed build.
type Result struct {
	ThemeID    string
	ThemeCount int
	PageCount  int
	OutputDir  string
	OutputHash string
	Duration   time.Duration
}

// outputFile is one file destined for the output tree.
type outputFile struct {
	Rel  string
	Data []byte
}

// Run executes the full pipeline. The output directory is removed and
// rewritten on every successful build, so pages from earlier builds never
// linger alongside the new set.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg := opts.Config
	logger := opts.Logger
	start := time.Now()

	_, themes, err := theme.Load(cfg.ThemesDir, cfg.Manifest)
	if err != nil {
		return nil, err
	}
	selected, err := theme.SelectDefault(themes)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("theme", selected.Metadata.ID).
		Int("themes", len(themes)).
		Msg("themes loaded")

	stylingCfg, err := styling.Emit(selected)
	if err != nil {
		return nil, err
	}
	if err := stylingCfg.Validate(selected); err != nil {
		return nil, err
	}

	content, err := site.LoadContent(cfg.ContentPath)
	if err != nil {
		return nil, err
	}

	files, pages, err := assemble(themes, selected, stylingCfg, content)
	if err != nil {
		return nil, err
	}

	// Only clean once the whole output set is assembled, so a failed build
	// leaves the previous output in place.
	if err := cleanOutput(cfg.OutputDir); err != nil {
		return nil, err
	}
	if err := writeOutput(cfg.OutputDir, files); err != nil {
		return nil, err
	}

	result := &Result{
		ThemeID:    selected.Metadata.ID,
		ThemeCount: len(themes),
		PageCount:  pages,
		OutputDir:  cfg.OutputDir,
		OutputHash: hashOutput(files),
		Duration:   time.Since(start),
	}

	if opts.Builds != nil {
		record := &models.BuildRecord{
			ThemeID:    result.ThemeID,
			OutputHash: result.OutputHash,
			PageCount:  result.PageCount,
			ThemeCount: result.ThemeCount,
			Duration:   result.Duration,
		}
		if err := opts.Builds.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("record build: %w", err)
		}
	}

	logger.Info().
		Str("theme", result.ThemeID).
		Int("pages", result.PageCount).
		Str("hash", result.OutputHash[:12]).
		Dur("took", result.Duration).
		Msg("build complete")

	return result, nil
}

// assemble produces the full output file set in memory.
func assemble(themes []*theme.Tokens, selected *theme.Tokens, stylingCfg *styling.Config, content *site.Content) ([]outputFile, int, error) {
	var files []outputFile

	var css bytes.Buffer
	if err := styling.WriteCSS(&css, themes, selected); err != nil {
		return nil, 0, err
	}
	files = append(files, outputFile{Rel: "assets/theme.css", Data: css.Bytes()})
	files = append(files, outputFile{Rel: "assets/site.css", Data: site.BaseCSS()})

	stylingJSON, err := json.MarshalIndent(stylingCfg, "", "  ")
	if err != nil {
		return nil, 0, fmt.Errorf("encode styling config: %w", err)
	}
	files = append(files, outputFile{Rel: "assets/styling.json", Data: append(stylingJSON, '\n')})

	themeIDs := make([]string, 0, len(themes))
	for _, t := range themes {
		themeIDs = append(themeIDs, t.Metadata.ID)
	}

	pages := 0
	for _, route := range site.Routes() {
		html, err := site.RenderPage(route, site.PageData{
			Content: content,
			ThemeID: selected.Metadata.ID,
			Themes:  themeIDs,
		})
		if err != nil {
			return nil, 0, err
		}
		files = append(files, outputFile{Rel: route.OutputPath(), Data: []byte(html)})
		pages++
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, pages, nil
}

// cleanOutput removes a previous build's output tree. It refuses paths that
// would wipe the working directory or the filesystem root.
func cleanOutput(dir string) error {
	cleaned := filepath.Clean(dir)
	if cleaned == "." || cleaned == string(filepath.Separator) {
		return fmt.Errorf("refusing to clean output dir %q", dir)
	}
	if err := os.RemoveAll(cleaned); err != nil {
		return fmt.Errorf("clean output dir %s: %w", dir, err)
	}
	return nil
}

func writeOutput(dir string, files []outputFile) error {
	for _, file := range files {
		path := filepath.Join(dir, filepath.FromSlash(file.Rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create output dir for %s: %w", file.Rel, err)
		}
		if err := os.WriteFile(path, file.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", file.Rel, err)
		}
	}
	return nil
}

// hashOutput digests the whole output set. Files are already sorted by path,
// so the same inputs always produce the same hash.
func hashOutput(files []outputFile) string {
	digest := sha256.New()
	for _, file := range files {
		digest.Write([]byte(file.Rel))
		digest.Write([]byte{0})
		digest.Write(file.Data)
		digest.Write([]byte{0})
	}
	return hex.EncodeToString(digest.Sum(nil))
}
