// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// trace traces with key 'mstep.cli'.
func trace() tracing.Trace {
	return tracing.Select("mstep.cli")
}

// Formatter writes an item to w. It returns false if it does not know how to
// format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, tables, errors and Stringers. Everything
// else is written as a YAML document.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case nil:
		return true, nil
	case string:
		_, err := fmt.Fprintf(w, "▶ %s\n", t)
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "▶ error: %s\n", t.Error())
		return err == nil, err
	case table.Writer:
		_, err := fmt.Fprintf(w, "%s\n", t.Render())
		return err == nil, err
	case fmt.Stringer:
		_, err := fmt.Fprintf(w, "▶ %s\n", t.String())
		return err == nil, err
	default:
		out, err := yaml.Marshal(t)
		if err != nil {
			trace().Errorf("cannot format object of type %T: %v", t, err)
			fmt.Fprintf(w, "▶ object of type %T\n", t)
			return false, err
		}
		io.WriteString(w, "▶ ---\n")
		_, err = w.Write(out)
		return err == nil, err
	}
}

// Print formats item with f and falls back to DefaultFormatter if f declines.
func Print(item interface{}, f Formatter, w io.Writer) error {
	if f != nil {
		if ok, err := f.Format(item, w); ok || err != nil {
			return err
		}
	}
	_, err := DefaultFormatter{}.Format(item, w)
	return err
}
