// Package site holds the static texts around the category pages: header
// title, home page copy, the Secure placeholder and the nav footer links.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/faves/assets"
)

// Settings is the parsed site.yaml.
type Settings struct {
	Title        string   `yaml:"title"`
	Welcome      string   `yaml:"welcome"`
	Intro        string   `yaml:"intro"`
	Details      []string `yaml:"details"`
	SecureNotice string   `yaml:"secure_notice"`
	Footer       []Link   `yaml:"footer"`
}

// Link is a labeled external link shown in the nav footer.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

func (s *Settings) setDefaults() {
	if s.Title == "" {
		s.Title = "a few of my favorite things"
	}
	if s.Welcome == "" {
		s.Welcome = "Welcome."
	}
	if s.SecureNotice == "" {
		s.SecureNotice = "Nothing to see here."
	}
}

// Parse decodes a site document and fills in defaults.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse site yaml: %w", err)
	}
	for i, l := range s.Footer {
		if l.Label == "" || l.Href == "" {
			return nil, fmt.Errorf("footer link %d needs both label and href", i)
		}
	}
	s.setDefaults()
	return &s, nil
}

// Embedded returns the settings bundled into the binary.
func Embedded() (*Settings, error) {
	return Parse(assets.SiteYAML())
}

// Loader reads settings from a file on disk.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the file.
func (l *Loader) Load() (*Settings, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}
	return Parse(data)
}

// Resolve returns the file settings when path is set, the embedded ones otherwise.
func Resolve(path string) (*Settings, error) {
	if path == "" {
		return Embedded()
	}
	return NewLoader(path).Load()
}
