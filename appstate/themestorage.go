package appstate

import (
	"context"
	"fmt"
	"sync"

	fs "github.com/ungerik/go-fs"
)

// ThemeStorage persists the theme preference.
type ThemeStorage interface {
	// LoadTheme returns the stored theme and true,
	// or false if no theme was stored yet.
	LoadTheme(ctx context.Context) (Theme, bool, error)
	SaveTheme(ctx context.Context, theme Theme) error
}

// ThemeFileName is the name of the file
// used by FileThemeStorage within its directory.
const ThemeFileName = "theme"

// FileThemeStorage stores the theme as plain text
// in the file ThemeFileName within Dir.
type FileThemeStorage struct {
	Dir fs.File
}

// NewFileThemeStorage returns a FileThemeStorage for dir.
func NewFileThemeStorage(dir string) *FileThemeStorage {
	return &FileThemeStorage{Dir: fs.File(dir)}
}

// File returns the theme file.
func (s *FileThemeStorage) File() fs.File {
	return s.Dir.Join(ThemeFileName)
}

func (s *FileThemeStorage) LoadTheme(ctx context.Context) (Theme, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	file := s.File()
	if !file.Exists() {
		return "", false, nil
	}
	data, err := file.ReadAll()
	if err != nil {
		return "", false, fmt.Errorf("reading theme file %s: %w", file, err)
	}
	theme, err := ParseTheme(string(data))
	if err != nil {
		return "", false, fmt.Errorf("theme file %s: %w", file, err)
	}
	return theme, true, nil
}

func (s *FileThemeStorage) SaveTheme(ctx context.Context, theme Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := s.Dir.MakeAllDirs(); err != nil {
		return fmt.Errorf("creating theme directory %s: %w", s.Dir, err)
	}
	file := s.File()
	if err := file.WriteAll([]byte(theme)); err != nil {
		return fmt.Errorf("writing theme file %s: %w", file, err)
	}
	return nil
}

// MemoryThemeStorage keeps the theme in memory.
// The zero value has no stored theme.
type MemoryThemeStorage struct {
	mtx    sync.Mutex
	theme  Theme
	stored bool
	saves  int
}

func (s *MemoryThemeStorage) LoadTheme(ctx context.Context) (Theme, bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.theme, s.stored, nil
}

func (s *MemoryThemeStorage) SaveTheme(ctx context.Context, theme Theme) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.theme = theme
	s.stored = true
	s.saves++
	return nil
}

// Saves returns how often SaveTheme was called.
func (s *MemoryThemeStorage) Saves() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.saves
}
