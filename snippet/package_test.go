package snippet

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCollection_Package(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(iconPath, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c := &Collection{
		Name:     "greetings",
		Prefix:   ";",
		Suffix:   "!",
		IconPath: iconPath,
	}
	c.Insert("hello there", "hello", "hi")
	c.Insert("goodbye now", "bye", "bye")

	dst := t.TempDir()
	path, err := c.Package(PackageOptions{Dir: dst})
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if path != filepath.Join(dst, "greetings"+ArchiveExt) {
		t.Errorf("unexpected archive path %q", path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	var snippetCount int
	var sawInfo, sawIcon bool
	for _, f := range r.File {
		switch {
		case f.Name == "info.plist":
			sawInfo = true
			content := readZipFile(t, f)
			if !strings.Contains(content, "<string>;</string>") || !strings.Contains(content, "<string>!</string>") {
				t.Errorf("info.plist missing affixes: %s", content)
			}
		case f.Name == "icon.png":
			sawIcon = true
			if got := readZipFile(t, f); got != "png-bytes" {
				t.Errorf("icon content = %q", got)
			}
		case strings.HasSuffix(f.Name, ".json"):
			snippetCount++
			var file snippetFile
			if err := json.Unmarshal([]byte(readZipFile(t, f)), &file); err != nil {
				t.Errorf("snippet %s is not valid JSON: %v", f.Name, err)
			}
			if file.AlfredSnippet.UID == "" {
				t.Errorf("snippet %s has no uid", f.Name)
			}
		default:
			t.Errorf("unexpected archive entry %q", f.Name)
		}
		if strings.Contains(f.Name, "/") {
			t.Errorf("entry %q is not at the archive root", f.Name)
		}
	}

	if snippetCount != 2 {
		t.Errorf("expected 2 snippet entries, got %d", snippetCount)
	}
	if !sawInfo {
		t.Error("archive missing info.plist")
	}
	if !sawIcon {
		t.Error("archive missing icon.png")
	}
}

func TestCollection_PackageWithoutIcon(t *testing.T) {
	c := &Collection{Name: "plain"}
	c.Insert("body", "name", "kw")

	path, err := c.Package(PackageOptions{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Package: %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == "icon.png" {
			t.Error("archive should not contain an icon")
		}
	}
}

func TestCollection_PackageRequiresName(t *testing.T) {
	c := &Collection{}
	if _, err := c.Package(PackageOptions{Dir: t.TempDir()}); err == nil {
		t.Error("expected an error for an unnamed collection")
	}
}

func readZipFile(t *testing.T, f *zip.File) string {
	t.Helper()
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("open %s: %v", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", f.Name, err)
	}
	return string(data)
}
