package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	cgerrors "github.com/Alia5/paramgen/internal/codegen/errors"
)

// Digest returns the hex encoded BLAKE2b-256 sum of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Matches reports whether the file at path exists and holds exactly data.
// A missing file is not an error.
func Matches(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, cgerrors.NewOutputError("read", path, err)
	}
	want := blake2b.Sum256(data)
	got := blake2b.Sum256(existing)
	return bytes.Equal(want[:], got[:]), nil
}

// WriteFileAtomic replaces the file at path with data in a single step.
// The content is staged in a temporary file next to path, synced and then
// renamed over the destination, so readers observe either the old or the new
// file and never a partial one. The destination directory must exist.
//
// When the file already holds data nothing is written and written is false.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) (written bool, err error) {
	same, err := Matches(path, data)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, cgerrors.NewOutputError("create", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return false, cgerrors.NewOutputError("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return false, cgerrors.NewOutputError("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, cgerrors.NewOutputError("close", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return false, cgerrors.NewOutputError("chmod", path, err)
	}
	if err := replaceFile(tmpName, path); err != nil {
		return false, cgerrors.NewOutputError("replace", path, err)
	}
	committed = true
	return true, nil
}
