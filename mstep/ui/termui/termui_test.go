package termui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.cli")
	defer teardown()
	//
	var b bytes.Buffer
	df := DefaultFormatter{}
	df.Format("hello", &b)
	df.Format(errors.New("broken"), &b)
	df.Format(map[string]int{"steps": 3}, &b)
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Input", "Action"})
	tw.AppendRow(table.Row{"LEX", "Init"})
	df.Format(tw, &b)
	out := b.String()
	t.Logf("\n%s", out)
	for _, expect := range []string{"▶ hello\n", "▶ error: broken\n", "steps: 3\n", "Init"} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected %q in output", expect)
		}
	}
}

type declining struct{}

func (declining) Format(interface{}, io.Writer) (bool, error) {
	return false, nil
}

func TestPrintFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mstep.cli")
	defer teardown()
	//
	var b bytes.Buffer
	if err := Print("fallback", declining{}, &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != "▶ fallback\n" {
		t.Errorf("expected default formatting, have %q", b.String())
	}
}
