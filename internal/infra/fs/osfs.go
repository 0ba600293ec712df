package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// OSFS copies on the local disk. Exclude holds doublestar patterns matched
// against slash-separated paths relative to a copied folder.
type OSFS struct {
	Exclude []string
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Copy copies the file or folder at src to dst. The copy is staged next to
// dst and only swapped in once complete, so a failed copy leaves dst as it
// was. A copied folder replaces rather than merges.
func (o OSFS) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("reading %s: %w", src, err)
	}

	if err := checkNotSelf(src, dst, info); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	stage, err := os.MkdirTemp(filepath.Dir(dst), ".copyto-")
	if err != nil {
		return errors.Errorf("staging %s: %w", dst, err)
	}
	defer os.RemoveAll(stage)

	staged := filepath.Join(stage, "new")
	if info.IsDir() {
		root, err := filepath.EvalSymlinks(src)
		if err != nil {
			return errors.Errorf("resolving %s: %w", src, err)
		}
		err = o.copyDir(root, staged)
		if err != nil {
			return unstage(err, staged, dst)
		}
	} else if err := copyFile(src, staged, info.Mode().Perm()); err != nil {
		return unstage(err, staged, dst)
	}

	return swap(staged, dst, filepath.Join(stage, "old"))
}

// unstage points OS errors about the staging copy at dst, the path the user
// asked for.
func unstage(err error, staged, dst string) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && strings.HasPrefix(pathErr.Path, staged) {
		pathErr.Path = dst + strings.TrimPrefix(pathErr.Path, staged)
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && strings.HasPrefix(linkErr.New, staged) {
		linkErr.New = dst + strings.TrimPrefix(linkErr.New, staged)
	}
	return err
}

// swap moves staged to dst, parking any existing dst at old until the move
// succeeds.
func swap(staged, dst, old string) error {
	_, err := os.Lstat(dst)
	hadTarget := err == nil
	if hadTarget {
		if err := os.Rename(dst, old); err != nil {
			return errors.Errorf("replacing %s: %w", dst, err)
		}
	}
	if err := os.Rename(staged, dst); err != nil {
		if hadTarget {
			_ = os.Rename(old, dst)
		}
		return errors.Errorf("replacing %s: %w", dst, err)
	}
	return nil
}

func checkNotSelf(src, dst string, info fs.FileInfo) error {
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return errors.New("source and destination are the same")
	}
	if !info.IsDir() {
		return nil
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return errors.Errorf("resolving %s: %w", src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return errors.Errorf("resolving %s: %w", dst, err)
	}
	if strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return errors.New("cannot copy a folder into itself")
	}
	return nil
}

func (o OSFS) copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Errorf("resolving %s: %w", path, err)
		}
		if rel != "." && o.excluded(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return errors.Errorf("reading link %s: %w", path, err)
			}
			if err := os.Symlink(link, target); err != nil {
				return errors.Errorf("creating link %s: %w", target, err)
			}
			return nil
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return errors.Errorf("reading %s: %w", path, err)
			}
			if err := os.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return errors.Errorf("creating %s: %w", target, err)
			}
			return nil
		default:
			info, err := d.Info()
			if err != nil {
				return errors.Errorf("reading %s: %w", path, err)
			}
			return copyFile(path, target, info.Mode().Perm())
		}
	})
}

func (o OSFS) excluded(rel string) bool {
	for _, pattern := range o.Exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string, perm fs.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening %s: %w", src, err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Errorf("writing %s: %w", dst, err)
	}
	if err := dstFile.Close(); err != nil {
		return errors.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
