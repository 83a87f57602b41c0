// Package deck loads the pages shown in the carousel: files passed on the
// command line, a directory of text files, or the built-in demo deck.
package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Page is one carousel page.
type Page struct {
	Title string
	Body  string
	Path  string // empty for demo pages
	Size  int64
}

// Deck is an ordered set of pages.
type Deck struct {
	Name  string
	Pages []Page

	key string
}

// Key identifies the deck for the session store.
func (d *Deck) Key() string { return d.key }

// Count returns the number of pages.
func (d *Deck) Count() int { return len(d.Pages) }

// Titles returns the page titles in order.
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		titles[i] = p.Title
	}
	return titles
}

// Load builds a deck from command line arguments: no arguments means the demo
// deck, a single directory means every text file inside it, anything else is
// treated as an explicit list of files.
func Load(args []string) (*Deck, error) {
	if len(args) == 0 {
		return Demo(), nil
	}

	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", args[0], err)
		}
		if info.IsDir() {
			return LoadDir(args[0])
		}
	}

	return LoadFiles(args)
}

// LoadFiles builds a deck from an explicit list of files, in the given order.
func LoadFiles(paths []string) (*Deck, error) {
	d := &Deck{}
	for _, path := range paths {
		page, err := loadPage(path)
		if err != nil {
			return nil, err
		}
		d.Pages = append(d.Pages, page)
	}
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("no pages to show")
	}

	abs, err := filepath.Abs(paths[0])
	if err != nil {
		abs = paths[0]
	}
	d.Name = filepath.Base(filepath.Dir(abs))
	d.key = abs
	return d, nil
}

// LoadDir builds a deck from every .txt and .md file in dir, sorted by name.
func LoadDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md", ".markdown":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no text pages in %s", dir)
	}
	sort.Strings(paths)

	d, err := LoadFiles(paths)
	if err != nil {
		return nil, err
	}

	abs, aerr := filepath.Abs(dir)
	if aerr != nil {
		abs = dir
	}
	d.Name = filepath.Base(abs)
	d.key = abs
	return d, nil
}

func loadPage(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Page{
		Title: TitleFor(path),
		Body:  string(data),
		Path:  path,
		Size:  int64(len(data)),
	}, nil
}

// TitleFor derives a tab title from a file path: the base name without its
// extension, with separators turned into spaces.
func TitleFor(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if name == "" {
		name = filepath.Base(path)
	}
	return name
}
