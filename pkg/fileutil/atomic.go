// Package fileutil provides atomic file writes: replace-in-place for
// configuration files and create-only for report files.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/xmllint/internal/errors"
)

// ErrExists is returned by the exclusive writers when the target exists.
var ErrExists = errors.New("file already exists")

// writeTemp writes data to a new temp file in dir with perm applied and
// returns its name. The caller owns removal of the temp file.
func writeTemp(dir string, data []byte, perm os.FileMode) (string, error) {
	// Same directory as the target so rename and link stay on one filesystem
	tmp, err := os.CreateTemp(dir, ".xmllint-atomic-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "syncing temp file")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "closing temp file")
	}

	return tmpName, nil
}

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// This ensures interrupted writes leave the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(filepath.Dir(path), data, perm)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// CreateExclusive writes data to path only if path does not exist yet.
// Readers never observe a partially written file: the content is staged in
// a temp file and hard-linked into place, and the link fails when the
// target exists. In that case the returned error is marked ErrExists.
//
// The caller is responsible for ensuring the parent directory exists.
func CreateExclusive(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(filepath.Dir(path), data, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	if err := os.Link(tmpName, path); err != nil {
		if os.IsExist(err) {
			return errors.Mark(errors.Wrapf(err, "creating %s", path), ErrExists)
		}
		return errors.Wrapf(err, "linking %s", path)
	}

	return nil
}

// MarshalJSON encodes v with 2-space indentation and a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling JSON")
	}
	return append(data, '\n'), nil
}

// CreateExclusiveJSON writes v as indented JSON to a new file at path.
// See CreateExclusive.
func CreateExclusiveJSON(path string, v any, perm os.FileMode) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	return CreateExclusive(path, data, perm)
}

// AtomicWriteYAML writes v as YAML to path atomically with 0644 permissions.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteYAML(path string, v any) (err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return error
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	return AtomicWriteFile(path, data, 0o644)
}
