// SPDX-License-Identifier: MIT

package problemio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/problem"
)

// ErrEmptyDocument is returned when the input holds no document at all.
var ErrEmptyDocument = errors.New("problemio: empty document")

// ErrConflictingKeys is returned when a vector is given under both its
// English and its Spanish key.
var ErrConflictingKeys = errors.New("problemio: both english and spanish keys given")

// document is the on-disk shape, with the alias keys.
type document struct {
	Costs   [][]float64 `yaml:"costs"`
	Supply  []float64   `yaml:"supply"`
	Demand  []float64   `yaml:"demand"`
	Costos  [][]float64 `yaml:"costos"`
	Oferta  []float64   `yaml:"oferta"`
	Demanda []float64   `yaml:"demanda"`
}

func (d document) problem() (problem.Problem, error) {
	if (d.Costs != nil && d.Costos != nil) ||
		(d.Supply != nil && d.Oferta != nil) ||
		(d.Demand != nil && d.Demanda != nil) {
		return problem.Problem{}, ErrConflictingKeys
	}

	p := problem.Problem{Costs: d.Costs, Supply: d.Supply, Demand: d.Demand}
	if p.Costs == nil {
		p.Costs = d.Costos
	}
	if p.Supply == nil {
		p.Supply = d.Oferta
	}
	if p.Demand == nil {
		p.Demand = d.Demanda
	}

	return p, nil
}

// Decode reads one problem document from r and validates it.
// Validation failures wrap the problem sentinels (errors.Is works).
func Decode(r io.Reader) (problem.Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return problem.Problem{}, ErrEmptyDocument
		}

		return problem.Problem{}, errors.Wrap(err, "problemio: decode")
	}

	p, err := doc.problem()
	if err != nil {
		return problem.Problem{}, err
	}
	if err := p.Validate(); err != nil {
		return problem.Problem{}, errors.WithMessage(err, "problemio")
	}

	return p, nil
}

// Load opens path and decodes it. "-" reads standard input.
func Load(path string) (problem.Problem, error) {
	if path == "-" {
		p, err := Decode(os.Stdin)

		return p, errors.WithMessage(err, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return problem.Problem{}, errors.Wrapf(err, "problemio: open %s", path)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return problem.Problem{}, errors.WithMessagef(err, "%s", path)
	}

	return p, nil
}

// Encode writes p to w as a YAML document.
func Encode(w io.Writer, p problem.Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "problemio: encode")
	}

	return errors.Wrap(enc.Close(), "problemio: encode")
}

// Save writes p to path, creating or truncating the file.
func Save(path string, p problem.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "problemio: create %s", path)
	}
	if err := Encode(f, p); err != nil {
		_ = f.Close()

		return err
	}

	return errors.Wrapf(f.Close(), "problemio: close %s", path)
}
