// Package profiles persists snapshots under a profiles root: one
// directory per profile name holding the metadata document and the
// archive blob. Profiles are read many times, deleted explicitly, and
// never auto-expired.
package profiles

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/filesystem"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/paths"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Store reads and writes profiles under a root directory.
type Store struct {
	root string
	fs   types.FS
}

// New creates a store rooted at root. fsys may be nil for the OS
// filesystem.
func New(root string, fsys types.FS) *Store {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Store{root: root, fs: fsys}
}

// Root returns the profiles root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory of the named profile.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// ArchivePath returns the archive blob path of the named profile.
func (s *Store) ArchivePath(name string) string {
	return filepath.Join(s.Dir(name), paths.ArchiveFileName)
}

// MetadataPath returns the metadata document path of the named profile.
func (s *Store) MetadataPath(name string) string {
	return filepath.Join(s.Dir(name), paths.MetadataFileName)
}

// Exists reports whether the named profile has a metadata document.
func (s *Store) Exists(name string) bool {
	_, err := s.fs.Stat(s.MetadataPath(name))
	return err == nil
}

// Save persists a profile: the archive blob is written and finalized
// first, then the metadata document. A profile with a readable metadata
// file is therefore always backed by a complete archive.
func (s *Store) Save(meta types.SnapshotMetadata, archiveData []byte) (string, error) {
	logger := logging.GetLogger("profiles")

	if err := paths.ValidateProfileName(meta.Name); err != nil {
		return "", err
	}

	dir := s.Dir(meta.Name)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create profile directory %s", dir)
	}

	if err := s.fs.WriteFile(s.ArchivePath(meta.Name), archiveData, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write archive for profile %s", meta.Name)
	}

	doc, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot encode metadata for profile %s", meta.Name)
	}
	if err := s.fs.WriteFile(s.MetadataPath(meta.Name), doc, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write metadata for profile %s", meta.Name)
	}

	logger.Info().Str("profile", meta.Name).Str("dir", dir).Int("files", len(meta.Files)).Msg("Profile saved")
	return dir, nil
}

// Load returns the metadata and archive path of the named profile.
func (s *Store) Load(name string) (types.SnapshotMetadata, string, error) {
	var meta types.SnapshotMetadata

	if err := paths.ValidateProfileName(name); err != nil {
		return meta, "", err
	}

	doc, err := s.fs.ReadFile(s.MetadataPath(name))
	if err != nil {
		return meta, "", errors.Wrapf(err, errors.ErrProfileNotFound, "profile %s not found", name)
	}
	if err := json.Unmarshal(doc, &meta); err != nil {
		return meta, "", errors.Wrapf(err, errors.ErrArchiveCorrupt, "profile %s has corrupt metadata", name)
	}

	archivePath := s.ArchivePath(name)
	if _, err := s.fs.Stat(archivePath); err != nil {
		return meta, "", errors.Wrapf(err, errors.ErrArchiveCorrupt, "profile %s archive not found or corrupted", name)
	}

	return meta, archivePath, nil
}

// List returns the metadata of every readable profile, sorted by name.
// Entries with unreadable metadata are skipped, not fatal.
func (s *Store) List() ([]types.SnapshotMetadata, error) {
	logger := logging.GetLogger("profiles")

	entries, err := s.fs.ReadDir(s.root)
	if err != nil {
		// An absent root simply means no profiles were saved yet.
		return nil, nil
	}

	var out []types.SnapshotMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, _, err := s.Load(entry.Name())
		if err != nil {
			logger.Debug().Err(err).Str("profile", entry.Name()).Msg("Skipping unreadable profile")
			continue
		}
		out = append(out, meta)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the named profile entirely.
func (s *Store) Delete(name string) error {
	logger := logging.GetLogger("profiles")

	if err := paths.ValidateProfileName(name); err != nil {
		return err
	}
	if !s.Exists(name) {
		return errors.Newf(errors.ErrProfileNotFound, "profile %s not found", name)
	}
	if err := s.fs.RemoveAll(s.Dir(name)); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot delete profile %s", name)
	}

	logger.Info().Str("profile", name).Msg("Profile deleted")
	return nil
}
