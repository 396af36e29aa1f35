package fs

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ManifestFilename lists the files of the last site written into a
// directory. Only those files are replaced by the next write; anything else
// in the directory is left alone.
const ManifestFilename = ".sitedraft"

// stagingDir collects files in a sibling "<dir>.tmp" directory and moves them
// into dir on commit.
type stagingDir struct {
	dir   string
	names []string
}

func (s *stagingDir) tempDir() string {
	return s.dir + ".tmp"
}

// Save writes a file into the staging directory. Names are flat.
func (s *stagingDir) Save(name string, content []byte) error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), name), content, 0644); err != nil {
		return err
	}
	s.names = append(s.names, name)
	return nil
}

// Commit removes the files listed in the previous manifest, then moves the
// staged files and a new manifest into dir.
func (s *stagingDir) Commit() error {
	var manifest bytes.Buffer
	for _, name := range s.names {
		manifest.WriteString(name + "\n")
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), ManifestFilename), manifest.Bytes(), 0644); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	previous, err := readManifest(s.dir)
	if err != nil {
		return err
	}
	for _, name := range previous {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	for _, name := range append(s.names, ManifestFilename) {
		if err := os.Rename(filepath.Join(s.tempDir(), name), filepath.Join(s.dir, name)); err != nil {
			return err
		}
	}
	return os.RemoveAll(s.tempDir())
}

// Abort discards everything staged.
func (s *stagingDir) Abort() error {
	s.names = nil
	return os.RemoveAll(s.tempDir())
}

// readManifest returns the base names recorded in dir's manifest. Entries
// with directory components are ignored.
func readManifest(dir string) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, ManifestFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || name == ManifestFilename || name != filepath.Base(name) || name == ".." {
			continue
		}
		names = append(names, name)
	}
	return names, scanner.Err()
}
