// Package restore merges a snapshot archive into a live destination tree.
//
// The archive is never extracted over the destination directly: it is
// staged into a fresh scratch directory and then copied file-by-file into
// place. Overwriting one file at a time only needs exclusive access to
// that file at the moment it is written, so a destination held open by a
// running client can still be restored; deleting and re-extracting the
// whole tree would need exclusive access to everything at once.
package restore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/brennanr9/claude-profile-manager/pkg/archive"
	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/filesystem"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// BackupTimeFormat names timestamped sibling backup directories.
const BackupTimeFormat = "20060102-150405"

// Source is the archive input: either a path to an existing archive file
// or a raw byte buffer (staged to a scratch file first).
type Source struct {
	Path string
	Data []byte
}

// Options controls a restore operation.
type Options struct {
	// Backup copies the whole destination tree to a timestamped sibling
	// directory before anything is overwritten.
	Backup bool

	// Force allows merging into an existing destination.
	Force bool

	// CacheDir hosts scratch extraction and buffer-staged archives.
	// Defaults to the OS temp directory.
	CacheDir string

	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// Restore merges the archive into dest and returns the destination path.
//
// Failure modes: a missing or corrupt archive and an existing destination
// without Force are reported before any destination mutation. A backup
// failure aborts before the merge. A locked file during the merge aborts
// with a FILE_LOCKED error naming the file; files merged before it stay
// merged. Scratch state is cleaned up best-effort on every path.
func Restore(src Source, dest string, opts Options) (string, error) {
	logger := logging.GetLogger("restore")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}

	archivePath := src.Path
	if archivePath == "" {
		if err := fsys.MkdirAll(cacheDir, 0755); err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create cache directory %s", cacheDir)
		}
		staged := filepath.Join(cacheDir, uniqueName("restore-archive")+".zip")
		if err := fsys.WriteFile(staged, src.Data, 0644); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot stage archive buffer to %s", staged)
		}
		defer removeQuietly(fsys, logger, staged)
		archivePath = staged
	}

	// Validate the archive before the backup or merge touch anything, so
	// a bad source leaves no side effects at all.
	if _, err := fsys.Stat(archivePath); err != nil {
		return "", errors.Wrapf(err, errors.ErrArchiveCorrupt, "archive %s not found or corrupted", archivePath)
	}

	destExists := false
	if _, err := fsys.Stat(dest); err == nil {
		destExists = true
	}
	if destExists && !opts.Force {
		return "", errors.Newf(errors.ErrDestExists, "destination %s already exists, pass force to merge into it", dest)
	}

	if opts.Backup && destExists {
		backupDir := fmt.Sprintf("%s-backup-%s", dest, time.Now().Format(BackupTimeFormat))
		if err := copyTree(fsys, dest, backupDir); err != nil {
			return "", errors.Wrapf(err, errors.ErrBackup, "cannot back up %s to %s", dest, backupDir)
		}
		logger.Info().Str("backup", backupDir).Msg("Destination backed up")
	}

	scratch := filepath.Join(cacheDir, uniqueName("restore-scratch"))
	if err := fsys.MkdirAll(scratch, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create scratch directory %s", scratch)
	}
	defer removeAllQuietly(fsys, logger, scratch)

	if err := archive.Extract(fsys, archivePath, scratch); err != nil {
		return "", err
	}

	if err := mergeTree(fsys, scratch, dest); err != nil {
		return "", err
	}

	logger.Info().Str("dest", dest).Msg("Restore complete")
	return dest, nil
}

// mergeTree copies every entry under src into dest, creating directories
// as needed and overwriting existing files byte-for-byte. Each file is an
// independent read-then-write; a write that fails because another process
// holds the file exclusively surfaces a FILE_LOCKED error naming it.
func mergeTree(fsys types.FS, src, dest string) error {
	if err := fsys.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dest)
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := mergeTree(fsys, srcPath, destPath); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(fsys, srcPath, destPath); err != nil {
			if isLockError(err) {
				return errors.Wrapf(err, errors.ErrFileLocked,
					"file %s is locked by another process, close the running client and retry", destPath).
					WithDetail("file", destPath)
			}
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot overwrite %s", destPath)
		}
	}

	return nil
}

// copyTree mirrors src into dest, used for pre-restore backups. Unlike
// mergeTree it reports raw errors; the caller decides their severity.
func copyTree(fsys types.FS, src, dest string) error {
	if err := fsys.MkdirAll(dest, 0755); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyTree(fsys, srcPath, destPath); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(fsys, srcPath, destPath); err != nil {
			return err
		}
	}

	return nil
}

// copyFile is a read-then-write copy, deliberately not a rename: renames
// need exclusive access to the parent directory on some platforms, while
// an in-place write only contends on the single target file.
func copyFile(fsys types.FS, src, dest string) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}

	perm := fs.FileMode(0644)
	if info, err := fsys.Stat(src); err == nil {
		if p := info.Mode().Perm(); p != 0 {
			perm = p
		}
	}

	return fsys.WriteFile(dest, data, perm)
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), os.Getpid())
}

// Cleanup failures are swallowed: the primary operation's outcome has
// already been determined by the time these run.

func removeQuietly(fsys types.FS, logger zerolog.Logger, path string) {
	if err := fsys.Remove(path); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Cleanup failed")
	}
}

func removeAllQuietly(fsys types.FS, logger zerolog.Logger, path string) {
	if err := fsys.RemoveAll(path); err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Cleanup failed")
	}
}
