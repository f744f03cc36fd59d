package fetch

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Archive downloads and unpacks .tar.gz, .tgz, .tar and .zip source archives.
// A single top-level directory shared by every entry is stripped.
type Archive struct {
	client *http.Client
}

var _ ports.Fetcher = (*Archive)(nil)

// NewArchive creates an Archive fetcher using client for downloads.
func NewArchive(client *http.Client) *Archive {
	if client == nil {
		client = http.DefaultClient
	}
	return &Archive{client: client}
}

// Fetch downloads spec.Location and extracts it into destDir.
// Locations without an http or https scheme are read from disk.
func (a *Archive) Fetch(ctx context.Context, spec domain.FetchSpec, destDir string) error {
	tmp, err := os.CreateTemp("", "forge-archive-*")
	if err != nil {
		return fetchError(err, spec, "failed to create download file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup
	defer tmp.Close()           //nolint:errcheck // Best effort cleanup

	if err := a.download(ctx, spec.Location, tmp); err != nil {
		return fetchError(err, spec, "download failed")
	}

	entries, err := a.open(spec.Location, tmp)
	if err != nil {
		return fetchError(err, spec, "failed to open archive")
	}
	if err := extract(entries, destDir); err != nil {
		return fetchError(err, spec, "failed to extract archive")
	}
	return nil
}

func (a *Archive) download(ctx context.Context, location string, dst *os.File) error {
	var body io.ReadCloser
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return err
		}
		resp, err := a.client.Do(req)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return zerr.With(zerr.New("unexpected status"), "status", strconv.Itoa(resp.StatusCode))
		}
		body = resp.Body
	} else {
		f, err := os.Open(strings.TrimPrefix(location, "file://")) //nolint:gosec // location comes from the registry
		if err != nil {
			return err
		}
		body = f
	}
	defer body.Close() //nolint:errcheck // Read-only

	if _, err := io.Copy(dst, body); err != nil {
		return err
	}
	_, err := dst.Seek(0, io.SeekStart)
	return err
}

// entry is one regular file or directory of an archive.
type entry struct {
	name string
	dir  bool
	mode os.FileMode
	open func() (io.ReadCloser, error)
}

func (a *Archive) open(location string, f *os.File) ([]entry, error) {
	name := strings.ToLower(location)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch {
	case strings.HasSuffix(name, ".zip"):
		return zipEntries(f)
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return tarEntries(gz)
	case strings.HasSuffix(name, ".tar"):
		return tarEntries(f)
	default:
		return nil, zerr.With(zerr.New("unsupported archive format"), "archive", path.Base(name))
	}
}

func zipEntries(f *os.File) ([]entry, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}
	entries := make([]entry, 0, len(zr.File))
	for _, zf := range zr.File {
		entries = append(entries, entry{
			name: zf.Name,
			dir:  zf.FileInfo().IsDir(),
			mode: zf.Mode().Perm(),
			open: func() (io.ReadCloser, error) { return zf.Open() },
		})
	}
	return entries, nil
}

// tarEntries buffers file contents because a tar stream can only be read once.
func tarEntries(r io.Reader) ([]entry, error) {
	tr := tar.NewReader(r)
	var entries []entry
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			entries = append(entries, entry{name: hdr.Name, dir: true, mode: 0o750})
		case tar.TypeReg:
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{
				name: hdr.Name,
				mode: hdr.FileInfo().Mode().Perm(),
				open: func() (io.ReadCloser, error) {
					return io.NopCloser(bytes.NewReader(data)), nil
				},
			})
		}
	}
}

// commonRoot returns the top-level directory shared by all entries, or "".
func commonRoot(entries []entry) string {
	root := ""
	for _, e := range entries {
		name := path.Clean(e.name)
		if name == "." {
			continue
		}
		first, _, nested := strings.Cut(name, "/")
		if !nested && !e.dir {
			return ""
		}
		if root == "" {
			root = first
		} else if root != first {
			return ""
		}
	}
	return root
}

func extract(entries []entry, destDir string) error {
	for _, e := range entries {
		if !filepath.IsLocal(filepath.FromSlash(e.name)) {
			return zerr.With(zerr.New("archive entry escapes destination"), "entry", e.name)
		}
	}

	root := commonRoot(entries)
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return err
	}
	for _, e := range entries {
		name := path.Clean(e.name)
		if root != "" {
			name = strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
		}
		if name == "" || name == "." {
			continue
		}
		target := filepath.Join(destDir, filepath.FromSlash(name))
		if e.dir {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return err
			}
			continue
		}
		if err := writeEntry(e, target); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(e entry, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}
	src, err := e.open()
	if err != nil {
		return err
	}
	defer src.Close() //nolint:errcheck // Read-only

	mode := e.mode | 0o600
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode) //nolint:gosec // target is checked against destDir
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
