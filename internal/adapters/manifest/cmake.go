package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"go.trai.ch/zerr"
)

var distributionCall = regexp.MustCompile(`\b(?:rosbuild_)?make_distribution\b([^\n]*)`)

// ParseLegacyVersion extracts the version from the first make_distribution or
// rosbuild_make_distribution call in a CMake script.
// ok is false when the text contains no such call. A call without a
// parenthesised, non-empty argument is an ErrParseFailed.
func ParseLegacyVersion(text string) (version string, ok bool, err error) {
	loc := distributionCall.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false, nil
	}

	line := strings.Count(text[:loc[0]], "\n") + 1
	rest := strings.TrimSpace(text[loc[2]:loc[3]])
	if !strings.HasPrefix(rest, "(") {
		return "", false, zerr.With(zerr.Wrap(domain.ErrParseFailed, "make_distribution without arguments"), "line", line)
	}

	end := strings.Index(rest, ")")
	if end < 0 {
		return "", false, zerr.With(zerr.Wrap(domain.ErrParseFailed, "unterminated make_distribution call"), "line", line)
	}

	fields := strings.Fields(rest[1:end])
	if len(fields) == 0 {
		return "", false, zerr.With(zerr.Wrap(domain.ErrParseFailed, "make_distribution without a version"), "line", line)
	}
	return fields[0], true, nil
}

type cmakeDialect struct{}

// depends is never satisfied: CMake scripts declare no unit dependencies.
func (cmakeDialect) depends(domain.Kind, string) ([]string, bool, error) {
	return nil, false, nil
}

func (cmakeDialect) version(_ domain.Kind, dir string) (string, bool, error) {
	path := filepath.Join(dir, domain.CMakeFileName)
	//nolint:gosec // Path is a unit directory found by the crawler
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	v, ok, err := ParseLegacyVersion(string(data))
	if err != nil {
		return "", false, zerr.With(err, "path", path)
	}
	return v, ok, nil
}
