// Package discover finds report files under an input directory and
// derives sample names from file names. Classification follows the
// naming convention of the upstream analysis pipelines: SampleGender
// reports end in _xy/_hetx/_sry with a .tsv extension, MSH2 hotspot
// reports end in _msh2.txt.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cmgg/qcreport/internal/sexpred"
)

// SexReport is a discovered SampleGender report file.
type SexReport struct {
	Path    string
	Sample  string // base name without extension, subtype suffix still attached
	Subtype sexpred.Subtype
}

// HotspotReport is a discovered MSH2 hotspot report file.
type HotspotReport struct {
	Path   string
	Sample string
}

// Reports holds every qualifying file found under one input directory.
type Reports struct {
	Sex      []SexReport
	Hotspots []HotspotReport
}

// Find walks dir and classifies every qualifying report file. Files are
// returned in lexical walk order.
func Find(dir string) (*Reports, error) {
	reports := &Reports{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		sample := strings.TrimSuffix(name, filepath.Ext(name))

		if subtype, ok := sexSubtype(name); ok {
			reports.Sex = append(reports.Sex, SexReport{Path: path, Sample: sample, Subtype: subtype})
			return nil
		}
		if strings.HasSuffix(name, "_msh2.txt") {
			reports.Hotspots = append(reports.Hotspots, HotspotReport{
				Path:   path,
				Sample: strings.TrimSuffix(sample, "_msh2"),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input directory: %w", err)
	}

	return reports, nil
}

// sexSubtype reports which SampleGender method a file name belongs to.
func sexSubtype(name string) (sexpred.Subtype, bool) {
	for _, subtype := range []sexpred.Subtype{sexpred.SubtypeXY, sexpred.SubtypeHetX, sexpred.SubtypeSRY} {
		if strings.HasSuffix(name, subtype.Suffix()+".tsv") {
			return subtype, true
		}
	}
	return "", false
}
