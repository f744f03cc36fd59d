package app

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadRequirementsFile returns the requirements listed in a pip requirements
// file. Nested "-r" and "--requirement" files are followed; other options,
// editable installs and URL or path entries are skipped.
func ReadRequirementsFile(path string) ([]domain.Requirement, error) {
	return readRequirements(path, map[string]bool{})
}

func readRequirements(path string, seen map[string]bool) ([]domain.Requirement, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid requirements path"), "path", path)
	}
	if seen[abs] {
		return nil, nil
	}
	seen[abs] = true

	f, err := os.Open(abs) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read requirements file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only

	var reqs []domain.Requirement
	sc := bufio.NewScanner(f)
	var pending string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := pending + sc.Text()
		pending = ""
		if cont, ok := strings.CutSuffix(line, `\`); ok {
			pending = cont
			continue
		}

		line = stripComment(line)
		if line == "" {
			continue
		}

		if nested, ok := nestedFile(line); ok {
			if !filepath.IsAbs(nested) {
				nested = filepath.Join(filepath.Dir(abs), nested)
			}
			more, err := readRequirements(nested, seen)
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, more...)
			continue
		}
		if skipLine(line) {
			continue
		}

		req, err := domain.ParseRequirement(line)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", lineNo)
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read requirements file"), "path", path)
	}
	return reqs, nil
}

// A "#" starts a comment at the beginning of a line or after whitespace.
func stripComment(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return ""
	}
	for _, sep := range []string{" #", "\t#"} {
		if i := strings.Index(line, sep); i >= 0 {
			line = line[:i]
		}
	}
	return strings.TrimSpace(line)
}

func nestedFile(line string) (string, bool) {
	for _, opt := range []string{"-r", "--requirement"} {
		if rest, ok := strings.CutPrefix(line, opt); ok {
			rest = strings.TrimPrefix(rest, "=")
			if rest != "" && rest != line {
				return strings.TrimSpace(rest), true
			}
		}
	}
	return "", false
}

func skipLine(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.Contains(line, "://") ||
		strings.HasPrefix(line, ".") ||
		strings.HasPrefix(line, "/")
}
