package main

import (
	"fmt"
	"io"

	"github.com/reusee/tailogic/cmds"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
	"gopkg.in/yaml.v3"
)

var formatFlag = cmds.Var[string]("-format")

func init() {
	cmds.Define("-yaml", cmds.Func(func() {
		*formatFlag = "yaml"
	}).Desc("print results as yaml"))
}

type printer func(w io.Writer, v *vectors.Vector) error

func getPrinter(format string) (printer, error) {
	switch format {
	case "", "text":
		return printText, nil
	case "yaml":
		return printYAML, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

func printText(w io.Writer, v *vectors.Vector) error {
	_, err := fmt.Fprintln(w, v)
	return err
}

type document struct {
	Kind     string       `yaml:"kind"`
	Values   []any        `yaml:"values"`
	Dim      []int        `yaml:"dim,omitempty"`
	DimNames [][]string   `yaml:"dimnames,omitempty"`
	Names    []string     `yaml:"names,omitempty"`
	Tsp      *vectors.Tsp `yaml:"tsp,omitempty"`
	Class    []string     `yaml:"class,omitempty"`
}

// toDocument renders NA elements as null.
func toDocument(v *vectors.Vector) document {
	attrs := v.Attrs()
	doc := document{
		Kind:     v.Kind().String(),
		Values:   []any{},
		Dim:      attrs.Dim,
		DimNames: attrs.DimNames,
		Names:    attrs.Names,
		Tsp:      attrs.Tsp,
		Class:    attrs.Class,
	}
	missing := vectors.MissingMask(v)
	logicals := v.Logicals()
	for i := range v.Len() {
		if missing[i] {
			doc.Values = append(doc.Values, nil)
			continue
		}
		switch v.Kind() {
		case vectors.KindLogical:
			doc.Values = append(doc.Values, logicals[i] == tribool.True)
		case vectors.KindInteger:
			doc.Values = append(doc.Values, v.Integers()[i])
		case vectors.KindDouble:
			doc.Values = append(doc.Values, v.Doubles()[i])
		case vectors.KindComplex:
			doc.Values = append(doc.Values, fmt.Sprint(v.Complexes()[i]))
		case vectors.KindCharacter:
			doc.Values = append(doc.Values, v.Strings()[i])
		}
	}
	return doc
}

func printYAML(w io.Writer, v *vectors.Vector) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(v)); err != nil {
		return err
	}
	return enc.Close()
}
