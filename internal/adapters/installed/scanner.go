// Package installed answers which distributions are installed in the target environment.
package installed

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// sitePathsScript prints the interpreter's install scheme directories in lookup order.
const sitePathsScript = `import json, sysconfig
p = sysconfig.get_paths()
print(json.dumps([p[k] for k in ("platlib", "platstdlib", "purelib") if k in p]))`

// SiteScanner implements ports.InstalledVersions by reading *.dist-info and
// *.egg-info metadata from site directories.
// The directories are scanned on every query so installs made during a run are seen.
type SiteScanner struct {
	executor ports.Executor
	python   string

	once     sync.Once
	dirs     []string
	dirsErr  error
	override []string
}

var _ ports.InstalledVersions = (*SiteScanner)(nil)

// NewSiteScanner creates a scanner. When siteDirs is empty the directories
// are asked from the python interpreter on first use.
func NewSiteScanner(executor ports.Executor, python string, siteDirs []string) *SiteScanner {
	return &SiteScanner{executor: executor, python: python, override: siteDirs}
}

// dist is one installed distribution record.
type dist struct {
	name    string
	version string
	path    string
}

// InstalledVersion returns the version of name installed in the first site
// directory that has it.
func (s *SiteScanner) InstalledVersion(ctx context.Context, name domain.PackageName) (string, bool, error) {
	dirs, err := s.siteDirs(ctx)
	if err != nil {
		return "", false, err
	}

	dash, underscore := domain.NameVariants(name)
	var dashDist, underscoreDist *dist
	for _, dir := range dirs {
		dists, err := scanDir(dir, name)
		if err != nil {
			return "", false, err
		}
		for _, d := range dists {
			key := strings.ToLower(d.name)
			switch {
			case key == underscore && underscore != dash:
				if underscoreDist == nil {
					underscoreDist = &d
				}
			default:
				if dashDist == nil {
					dashDist = &d
				}
			}
		}
	}

	switch {
	case dashDist != nil && underscoreDist != nil:
		err := zerr.With(zerr.Wrap(domain.ErrIdentityConflict, "ambiguous installed distribution"), "package", name)
		return "", false, zerr.With(err, "paths", []string{dashDist.path, underscoreDist.path})
	case dashDist != nil:
		return dashDist.version, true, nil
	case underscoreDist != nil:
		return underscoreDist.version, true, nil
	default:
		return "", false, nil
	}
}

func (s *SiteScanner) siteDirs(ctx context.Context) ([]string, error) {
	if len(s.override) > 0 {
		return s.override, nil
	}
	s.once.Do(func() {
		out, err := s.executor.Output(ctx, &domain.Command{Name: s.python, Args: []string{"-c", sitePathsScript}})
		if err != nil {
			s.dirsErr = zerr.Wrap(err, "failed to query site directories")
			return
		}
		var dirs []string
		if err := json.Unmarshal(out, &dirs); err != nil {
			s.dirsErr = zerr.With(zerr.Wrap(err, "failed to decode site directories"), "output", string(out))
			return
		}
		for _, d := range dirs {
			if d != "" && !slices.Contains(s.dirs, d) {
				s.dirs = append(s.dirs, d)
			}
		}
	})
	return s.dirs, s.dirsErr
}

// scanDir returns the distributions in dir whose canonical name is name.
// A missing directory holds nothing.
func scanDir(dir string, name domain.PackageName) ([]dist, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read site directory"), "path", dir)
	}

	var out []dist
	for _, e := range entries {
		base, metaFile, ok := metadataPath(e)
		if !ok || !strings.HasPrefix(string(domain.Canonicalize(base)), string(name)+"-") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if metaFile != "" {
			path = filepath.Join(path, metaFile)
		}
		d, err := readMetadata(path)
		if err != nil {
			return nil, err
		}
		if d.name == "" || domain.Canonicalize(d.name) != name {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// metadataPath maps a site directory entry to its name-version stem and the
// metadata file inside it ("" when the entry itself is the metadata file).
func metadataPath(e fs.DirEntry) (stem, metaFile string, ok bool) {
	if stem, found := strings.CutSuffix(e.Name(), ".dist-info"); found && e.IsDir() {
		return stem, "METADATA", true
	}
	if stem, found := strings.CutSuffix(e.Name(), ".egg-info"); found {
		if e.IsDir() {
			return stem, "PKG-INFO", true
		}
		return stem, "", true
	}
	return "", "", false
}

// readMetadata reads the Name and Version headers of a core metadata file.
func readMetadata(path string) (dist, error) {
	f, err := os.Open(path) //nolint:gosec // path is inside a site directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dist{}, nil
		}
		return dist{}, zerr.With(zerr.Wrap(err, "failed to read distribution metadata"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only

	d := dist{path: path}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break // end of headers
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "name":
			d.name = strings.TrimSpace(value)
		case "version":
			d.version = strings.TrimSpace(value)
		}
	}
	if err := sc.Err(); err != nil {
		return dist{}, zerr.With(zerr.Wrap(err, "failed to read distribution metadata"), "path", path)
	}
	return d, nil
}
