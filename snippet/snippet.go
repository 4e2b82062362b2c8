// Package snippet packages reusable text snippets into a distributable
// archive the launcher host can import.
package snippet

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snippet is a single reusable text fragment.
type Snippet struct {
	Body    string `yaml:"body"`
	Name    string `yaml:"name"`
	Keyword string `yaml:"keyword"`
}

// Collection is an ordered set of snippets destined for one archive.
type Collection struct {
	Name     string    `yaml:"name"`
	Prefix   string    `yaml:"prefix"`
	Suffix   string    `yaml:"suffix"`
	IconPath string    `yaml:"icon"`
	Snippets []Snippet `yaml:"snippets"`
}

// Insert appends a snippet to the collection.
func (c *Collection) Insert(body, name, keyword string) {
	c.Snippets = append(c.Snippets, Snippet{Body: body, Name: name, Keyword: keyword})
}

// LoadCollection reads a collection definition from a YAML file.
// A relative icon path is resolved against the definition file's
// directory.
func LoadCollection(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	var collection Collection
	if err := yaml.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}

	if collection.Name == "" {
		return nil, fmt.Errorf("collection %s has no name", path)
	}
	if collection.IconPath != "" && !filepath.IsAbs(collection.IconPath) {
		collection.IconPath = filepath.Join(filepath.Dir(path), collection.IconPath)
	}

	return &collection, nil
}

// snippetFile is the single-snippet JSON envelope inside the archive.
type snippetFile struct {
	AlfredSnippet snippetBody `json:"alfredsnippet"`
}

type snippetBody struct {
	Snippet string `json:"snippet"`
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Keyword string `json:"keyword"`
}

// write saves the snippet as its own JSON file under dir and returns
// the file path.
func (s Snippet) write(dir, uid string) (string, error) {
	data, err := json.MarshalIndent(snippetFile{
		AlfredSnippet: snippetBody{
			Snippet: s.Body,
			UID:     uid,
			Name:    s.Name,
			Keyword: s.Keyword,
		},
	}, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s [%s].json", sanitizeName(s.Name), uid))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// sanitizeName strips path separators so snippet names cannot escape
// the staging directory.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	return strings.ReplaceAll(name, string(filepath.Separator), "-")
}

// newUID returns a random identifier for a snippet file.
func newUID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "00000000000000000000000000000000"
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
