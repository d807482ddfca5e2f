package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Extract unpacks the archive at archivePath into destDir, creating it if
// needed. A missing or unreadable archive reports ARCHIVE_CORRUPT; entries
// that would escape destDir are rejected.
func Extract(fsys types.FS, archivePath, destDir string) error {
	logger := logging.GetLogger("archive")

	data, err := fsys.ReadFile(archivePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt, "archive %s not found or corrupted", archivePath)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt, "archive %s not found or corrupted", archivePath)
	}

	if err := fsys.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destDir)
	}

	cleanDest := filepath.Clean(destDir)
	for _, f := range zr.File {
		target := filepath.Join(cleanDest, filepath.FromSlash(f.Name))
		if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return errors.Newf(errors.ErrArchiveCorrupt, "archive entry %q escapes destination", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := fsys.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", f.Name)
			}
			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", f.Name)
		}
		if err := extractFile(fsys, f, target); err != nil {
			return err
		}
	}

	logger.Debug().Str("archive", archivePath).Str("dest", destDir).Int("entries", len(zr.File)).Msg("Archive extracted")
	return nil
}

func extractFile(fsys types.FS, f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt, "cannot open archive entry %s", f.Name)
	}
	data, err := io.ReadAll(rc)
	closeErr := rc.Close()
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt, "cannot read archive entry %s", f.Name)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, errors.ErrArchiveCorrupt, "cannot close archive entry %s", f.Name)
	}

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = fs.FileMode(0644)
	}
	if err := fsys.WriteFile(target, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target)
	}
	return nil
}
