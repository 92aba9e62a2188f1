package theme

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Clone errors.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrCopyOntoSelf = errors.New("destination is the source directory")
)

// CopyDir recursively copies src into dst, creating dst and any missing parents.
// File contents and modes are copied; modification times are preserved on a
// best-effort basis. Symlinks are followed. When dst lies inside src the new
// copy is excluded from what gets copied. Returns the number of bytes copied.
func CopyDir(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s: %w", src, ErrNotDirectory)
	}

	skip, err := nestedPath(src, dst)
	if err != nil {
		return 0, err
	}
	return copyTree(src, dst, info, skip)
}

// nestedPath returns dst expressed under src when dst lies inside src,
// or "" when it does not.
func nestedPath(src, dst string) (string, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return "", err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absSrc, absDst)
	if err != nil {
		return "", nil
	}
	switch {
	case rel == ".":
		return "", fmt.Errorf("%s: %w", dst, ErrCopyOntoSelf)
	case rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)):
		return "", nil
	}
	return filepath.Join(src, rel), nil
}

func copyTree(src, dst string, info fs.FileInfo, skip string) (int64, error) {
	// Owner write is kept so the copy can be populated and rewritten
	if err := os.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", src, err)
	}

	var total int64
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if skip != "" && srcPath == skip {
			continue
		}

		fi, err := os.Stat(srcPath)
		if err != nil {
			return total, err
		}

		switch {
		case fi.IsDir():
			n, err := copyTree(srcPath, dstPath, fi, skip)
			total += n
			if err != nil {
				return total, err
			}
		case fi.Mode().IsRegular():
			n, err := copyFile(srcPath, dstPath, fi.Mode().Perm())
			total += n
			if err != nil {
				return total, err
			}
			_ = os.Chtimes(dstPath, fi.ModTime(), fi.ModTime())
		}
	}

	// Directory times change while entries are written, so set them last
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return total, nil
}

// copyFile streams src into dst, truncating any existing dst.
func copyFile(src, dst string, perm fs.FileMode) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dst, cerr)
		}
	}()

	n, err = io.Copy(out, in)
	if err != nil {
		return n, fmt.Errorf("copy %s: %w", src, err)
	}
	return n, nil
}
