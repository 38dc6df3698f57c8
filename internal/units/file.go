package units

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ethwu/rn/internal/timefmt"
	"github.com/ethwu/rn/internal/util"
)

// Defaults applied to omitted place fields, matching the built-in
// layouts: decimal digits, two-digit columns.
const (
	defaultRadix = 10
	defaultWidth = 2
)

// fileSpec is the YAML schema of a unit-system definition:
//
//	name: dozenal
//	base: {num: 1, den: 1}
//	segments:
//	  - place: {label: hour, radix: 12, value: 3600000, width: 2}
//	  - text: ";"
//	  - place: {label: minute, radix: 12, value: 60000, modulus: 60}
type fileSpec struct {
	Name     string        `yaml:"name"`
	Base     baseSpec      `yaml:"base"`
	Segments []segmentSpec `yaml:"segments"`
}

type baseSpec struct {
	Num uint64 `yaml:"num"`
	Den uint64 `yaml:"den"`
}

type segmentSpec struct {
	Text  *string    `yaml:"text"`
	Place *placeSpec `yaml:"place"`
}

type placeSpec struct {
	Label   string `yaml:"label"`
	Radix   *int   `yaml:"radix"`
	Value   uint64 `yaml:"value"`
	Modulus uint64 `yaml:"modulus"`
	Width   *int   `yaml:"width"`
}

// Load reads a unit-system definition file and builds its formatter.
func Load(path string) (string, *timefmt.Formatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading unit file: %w", err)
	}
	name, f, err := Parse(data)
	if err != nil {
		return "", nil, fmt.Errorf("unit file %s: %w", path, err)
	}
	return name, f, nil
}

// Parse decodes a unit-system definition. Unknown fields are rejected
// so a typo fails instead of silently configuring nothing.
func Parse(data []byte) (string, *timefmt.Formatter, error) {
	var spec fileSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return "", nil, fmt.Errorf("parsing unit definition: %w", err)
	}
	if spec.Name == "" {
		return "", nil, fmt.Errorf("unit definition has no name")
	}
	if len(spec.Segments) == 0 {
		return "", nil, fmt.Errorf("unit definition %q has no segments", spec.Name)
	}

	segments := make([]timefmt.Segment, 0, len(spec.Segments))
	for i, s := range spec.Segments {
		switch {
		case s.Text != nil && s.Place != nil:
			return "", nil, fmt.Errorf("segment %d of %q has both text and place", i, spec.Name)
		case s.Text != nil:
			segments = append(segments, timefmt.Literal(*s.Text))
		case s.Place != nil:
			p := *s.Place
			if p.Radix == nil {
				p.Radix = util.Ptr(defaultRadix)
			}
			if p.Width == nil {
				p.Width = util.Ptr(defaultWidth)
			}
			segments = append(segments, timefmt.Place(timefmt.Unit{
				Radix:   *p.Radix,
				Label:   p.Label,
				Value:   p.Value,
				Modulus: p.Modulus,
				Width:   *p.Width,
			}))
		default:
			return "", nil, fmt.Errorf("segment %d of %q has neither text nor place", i, spec.Name)
		}
	}

	f, err := timefmt.New(timefmt.Ratio{Num: spec.Base.Num, Den: spec.Base.Den}, segments...)
	if err != nil {
		return "", nil, err
	}
	return spec.Name, f, nil
}
