// Package archive streams selected files into a single deflate-compressed
// zip container and extracts such containers back onto a filesystem. The
// container is a plain zip readable by any standard decompressor.
package archive

import (
	"archive/zip"
	"compress/flate"
	"io"
	"path/filepath"
	"sort"

	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Create writes the given entries (relative, slash-normalized paths under
// root) into w as a zip archive and returns the realized manifest: the
// entries actually written, in write order.
//
// Entries are sorted lexicographically before writing so archives are
// deterministic across platforms regardless of directory-walk order.
// Directories become explicit directory entries so empty directories
// survive a round-trip. Compression is deflate at the maximum level.
func Create(fsys types.FS, root string, entries []string, w io.Writer) ([]string, error) {
	logger := logging.GetLogger("archive")

	sorted := append([]string(nil), entries...)
	sort.Strings(sorted)

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	manifest := make([]string, 0, len(sorted))
	for _, rel := range sorted {
		full := filepath.Join(root, filepath.FromSlash(rel))
		info, err := fsys.Stat(full)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", rel)
		}

		if info.IsDir() {
			if _, err := zw.Create(rel + "/"); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot add directory entry %s", rel)
			}
			manifest = append(manifest, rel)
			continue
		}

		hdr := &zip.FileHeader{
			Name:     rel,
			Method:   zip.Deflate,
			Modified: info.ModTime(),
		}
		hdr.SetMode(info.Mode())

		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot add archive entry %s", rel)
		}

		data, err := fsys.ReadFile(full)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", rel)
		}
		if _, err := fw.Write(data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write archive entry %s", rel)
		}
		manifest = append(manifest, rel)
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "cannot finalize archive")
	}

	logger.Debug().Int("entries", len(manifest)).Msg("Archive written")
	return manifest, nil
}
