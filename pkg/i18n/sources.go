package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Source supplies the translation data a Translator is built from.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves translations from an in-memory map, mostly for tests and
// embedded defaults.
type MapSource struct {
	Data map[string]map[string]any
}

func (s *MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.Data, nil
}

// FileSource loads translations from a single file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a FileSource. Returns nil if parser is nil or path is
// empty.
func NewFileSource(parser Parser, path string) *FileSource {
	if parser == nil || path == "" {
		return nil
	}
	return &FileSource{parser: parser, path: path}
}

func (s *FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("translation file %q is empty", s.path)
	}

	translations, err := s.parser.Parse(content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// FSSource loads and merges every supported translation file from a directory
// of an fs.FS, which makes it work with embed.FS for compiled-in catalogs.
type FSSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSSource creates an FSSource. Returns nil if parser or fsys is nil, or
// dir is empty.
func NewFSSource(parser Parser, fsys fs.FS, dir string) *FSSource {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSSource{parser: parser, fsys: fsys, dir: dir}
}

func (s *FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.parser.SupportsExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		path := filepath.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			continue
		}

		fileTranslations, err := s.parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", path, errors.Join(ErrFailedToParseFile, err))
		}

		for lang, translations := range fileTranslations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], translations)
		}
		loaded = true
	}

	if !loaded {
		return nil, fmt.Errorf("no valid translation files found in %q", s.dir)
	}

	return all, nil
}
