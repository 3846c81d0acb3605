// SPDX-License-Identifier: MIT

// Package config loads search settings from YAML or TOML and turns them into
// kshortest options and edge accumulators for core graphs.
//
// A file looks like:
//
//	k: 3
//	max_hops: 5
//	visited: bitset
//	parallelism: 4
//	limits:
//	  - kind: sum
//	    attr: latency
//	    max: 40
//	  - kind: labels
//	    forbid: [red]
//
// Unknown keys are rejected. Values are validated with
// go-playground/validator before any engine is built.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rankpath/visited"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a file extension or format other than
	// YAML or TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalidConfig indicates a decoding or validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Format names an input encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Limit kinds.
const (
	KindSum        = "sum"
	KindBottleneck = "bottleneck"
	KindHops       = "hops"
	KindLabels     = "labels"
)

// Search is one search configuration.
type Search struct {
	K           int     `yaml:"k" toml:"k" validate:"gte=1"`
	MaxPasses   int     `yaml:"max_passes" toml:"max_passes" validate:"gte=0"`
	MaxHops     int     `yaml:"max_hops" toml:"max_hops" validate:"gte=0"`
	Visited     string  `yaml:"visited" toml:"visited" validate:"omitempty,visited"`
	Parallelism int     `yaml:"parallelism" toml:"parallelism" validate:"gte=1,lte=1024"`
	Limits      []Limit `yaml:"limits" toml:"limits" validate:"dive"`
}

// Limit describes one accumulator over core edges.
//
//	sum        – running sum of attr below Max (≤ Max when Inclusive)
//	bottleneck – running minimum of attr at or above Max
//	hops       – at most Max edges
//	labels     – edge labels never repeat and never hit Forbid
type Limit struct {
	Kind      string   `yaml:"kind" toml:"kind" validate:"required,oneof=sum bottleneck hops labels"`
	Attr      string   `yaml:"attr" toml:"attr" validate:"required_if=Kind sum,required_if=Kind bottleneck"`
	Max       float64  `yaml:"max" toml:"max"`
	Inclusive bool     `yaml:"inclusive" toml:"inclusive"`
	Forbid    []string `yaml:"forbid" toml:"forbid"`
}

// Default returns k=1, sequential expansion and the bit-set strategy.
func Default() Search {
	return Search{
		K:           1,
		Visited:     visited.BitSet.String(),
		Parallelism: 1,
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("visited", validateVisited)
}

// validateVisited accepts any name visited.ParseStrategy knows.
func validateVisited(fl validator.FieldLevel) bool {
	_, err := visited.ParseStrategy(fl.Field().String())

	return err == nil
}

// Load reads path and decodes it by extension: .yaml/.yml or .toml.
func Load(path string) (Search, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = FormatYAML
	case ".toml":
		f = FormatTOML
	default:
		return Search{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Search{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, f)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, f Format) (Search, error) {
	s := Default()
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults untouched.
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Search{}, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
		if err != nil {
			return Search{}, fmt.Errorf("%w: toml: %w", ErrInvalidConfig, err)
		}
		if un := meta.Undecoded(); len(un) > 0 {
			return Search{}, fmt.Errorf("%w: toml: unknown key %q", ErrInvalidConfig, un[0].String())
		}
	default:
		return Search{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}

	if err := s.Validate(); err != nil {
		return Search{}, err
	}

	return s, nil
}

// Validate checks every field and limit.
func (s Search) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
