package manifest

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"go.trai.ch/zerr"
)

// manifestXML is the subset of stack.xml and manifest.xml that is read.
type manifestXML struct {
	Version string      `xml:"version"`
	Depends []dependXML `xml:"depend"`
}

type dependXML struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// name returns the value of the attribute naming a unit of the given kind, or "".
func (d dependXML) name(kind domain.Kind) string {
	attr := kind.DependAttr()
	for _, a := range d.Attrs {
		if a.Name.Local == attr {
			return a.Value
		}
	}
	return ""
}

type xmlDialect struct{}

func (xmlDialect) depends(kind domain.Kind, dir string) ([]string, bool, error) {
	m, found, err := readManifestXML(kind, dir)
	if err != nil || !found {
		return nil, found, err
	}

	deps := make([]string, 0, len(m.Depends))
	for _, d := range m.Depends {
		if name := d.name(kind); name != "" {
			deps = append(deps, name)
		}
	}
	return deps, true, nil
}

func (xmlDialect) version(kind domain.Kind, dir string) (string, bool, error) {
	m, found, err := readManifestXML(kind, dir)
	if err != nil || !found {
		return "", found, err
	}
	return strings.TrimSpace(m.Version), true, nil
}

func readManifestXML(kind domain.Kind, dir string) (*manifestXML, bool, error) {
	path := filepath.Join(dir, kind.MarkerFile())
	//nolint:gosec // Path is a unit directory found by the crawler
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}

	var m manifestXML
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, false, zerr.With(zerr.Wrap(domain.ErrParseFailed, err.Error()), "path", path)
	}
	return &m, true, nil
}
