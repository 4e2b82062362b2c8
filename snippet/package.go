package snippet

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveExt is the file extension the host recognizes for importable
// snippet archives.
const ArchiveExt = ".alfredsnippets"

// infoPlistTemplate carries the keyword affixes the host applies to
// every snippet in the archive.
const infoPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>snippetkeywordprefix</key>
	<string>%s</string>
	<key>snippetkeywordsuffix</key>
	<string>%s</string>
</dict>
</plist>
`

// PackageOptions control where the archive lands.
type PackageOptions struct {
	// Dir is the destination directory. Empty means the current
	// working directory.
	Dir string
}

// Package stages the snippets, the info.plist and the optional icon
// in a temporary directory, zips them into {name}.alfredsnippets and
// moves the archive to the destination. It returns the final path.
func (c *Collection) Package(opts PackageOptions) (string, error) {
	if c.Name == "" {
		return "", fmt.Errorf("collection has no name")
	}

	workdir, err := os.MkdirTemp("", "launchkit-snippets-")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(workdir)

	var files []string
	for _, s := range c.Snippets {
		path, err := s.write(workdir, newUID())
		if err != nil {
			return "", fmt.Errorf("failed to stage snippet %q: %w", s.Name, err)
		}
		files = append(files, path)
	}

	infoPath := filepath.Join(workdir, "info.plist")
	info := fmt.Sprintf(infoPlistTemplate, c.Prefix, c.Suffix)
	if err := os.WriteFile(infoPath, []byte(info), 0644); err != nil {
		return "", fmt.Errorf("failed to stage info.plist: %w", err)
	}
	files = append(files, infoPath)

	if c.IconPath != "" {
		iconPath := filepath.Join(workdir, "icon.png")
		if err := copyFile(c.IconPath, iconPath); err != nil {
			return "", fmt.Errorf("failed to stage icon: %w", err)
		}
		files = append(files, iconPath)
	}

	archivePath := filepath.Join(workdir, c.Name+ArchiveExt)
	if err := writeArchive(archivePath, files); err != nil {
		return "", err
	}

	dst := opts.Dir
	if dst == "" {
		dst, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	destination := filepath.Join(dst, c.Name+ArchiveExt)
	if err := moveFile(archivePath, destination); err != nil {
		return "", fmt.Errorf("failed to place archive: %w", err)
	}

	return destination, nil
}

// writeArchive zips the staged files, flattened to the archive root.
func writeArchive(path string, files []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.Create(filepath.Base(file))
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to add %s: %w", filepath.Base(file), err)
		}
		src, err := os.Open(file)
		if err != nil {
			zw.Close()
			return err
		}
		_, err = io.Copy(w, src)
		src.Close()
		if err != nil {
			zw.Close()
			return err
		}
	}

	return zw.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// moveFile renames src to dst, falling back to copy+remove when the
// paths sit on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
