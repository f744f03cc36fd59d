package metadata

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// setupCfg is a parsed setup.cfg. Section and key names are case-insensitive.
type setupCfg struct {
	file *ini.File
}

func readSetupCfg(path string) (*setupCfg, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside a fetched source tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	// Requirement markers contain ";", so inline comments are not stripped.
	f, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:                true,
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
		SkipUnrecognizableLines:    true,
	}, data)
	if err != nil {
		return nil, false, err
	}
	return &setupCfg{file: f}, true, nil
}

func (c *setupCfg) get(section, key string) string {
	return strings.TrimSpace(c.file.Section(section).Key(key).String())
}

// list splits a multi-line value, dropping blanks and comments.
func (c *setupCfg) list(section, key string) []string {
	var out []string
	for line := range strings.SplitSeq(c.get(section, key), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
