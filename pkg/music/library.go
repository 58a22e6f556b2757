// Package music holds the song-name to link table used by the play command.
package music

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Library is a read-only song table. Keys are matched case-insensitively.
type Library struct {
	songs map[string]string
}

type libraryFile struct {
	Music map[string]string `yaml:"music"`
}

// New builds a Library from an in-memory table.
func New(songs map[string]string) *Library {
	l := &Library{songs: make(map[string]string, len(songs))}
	for name, link := range songs {
		l.songs[strings.ToLower(name)] = link
	}
	return l
}

// Load reads a YAML file with a top-level "music" mapping.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("music: read library: %w", err)
	}
	return Parse(data)
}

// Parse decodes the YAML form of a library.
func Parse(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("music: parse library: %w", err)
	}
	return New(f.Music), nil
}

// Lookup returns the link for name.
func (l *Library) Lookup(name string) (string, error) {
	link, ok := l.songs[strings.ToLower(name)]
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return link, nil
}

// Len returns the number of songs.
func (l *Library) Len() int {
	return len(l.songs)
}

// NotFoundError is returned by Lookup for unknown songs.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("music: song %q not found", e.Name)
}
