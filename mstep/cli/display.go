package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/mstep/engine"
	"github.com/npillmayer/mstep/grammar"
	"github.com/npillmayer/mstep/mstep/ui/termui"
	"gopkg.in/yaml.v3"
)

// Format is the output format of batch-mode.
type Format int

// Output formats.
const (
	FormatTable Format = iota
	FormatYAML
)

// ParseFormat maps "table" and "yaml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table", "":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatTable, fmt.Errorf("unknown output format %q", s)
}

// ExportYAML writes a snapshot as a YAML document.
func ExportYAML(snap engine.Snapshot, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}

// tokenList is a token stream with the parser's position in it. A negative
// cursor marks no position.
type tokenList struct {
	Tokens []grammar.Token
	Cursor int
}

// stackView is the parse stack, top first.
type stackView []grammar.Symbol

// Formatter renders the values returned by session commands as tables.
type Formatter struct {
	termui.DefaultFormatter
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case engine.Snapshot:
		item = snapshotAsTable(t)
	case []engine.HistoryEntry:
		item = historyAsTable(t)
	case tokenList:
		item = tokensAsTable(t)
	case stackView:
		item = stackAsTable(t)
	case []grammar.Production:
		item = productionsAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for various types -------------------------------------

func snapshotAsTable(snap engine.Snapshot) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Run %s", shortID(snap.RunID))
	tw.AppendRow(table.Row{"input", snap.Input})
	tw.AppendRow(table.Row{"status", colorStatus(snap)})
	tw.AppendRow(table.Row{"steps", snap.Steps})
	tw.AppendSeparator()
	lexer := snap.Lexer.Mode
	if snap.Lexer.Microstate != "" {
		lexer += " (" + snap.Lexer.Microstate + ")"
	}
	tw.AppendRow(table.Row{"lexer", lexer})
	if snap.Lexer.Partial != "" {
		tw.AppendRow(table.Row{"partial", snap.Lexer.Partial})
	}
	if !snap.Lexer.Ready.IsNone() {
		tw.AppendRow(table.Row{"ready", snap.Lexer.Ready.String()})
	}
	tw.AppendRow(table.Row{"tokens", tokenLine(snap.Tokens, snap.Cursor, snap.Phase != engine.Lexing)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"stack", stackLine(snap.Stack)})
	if len(snap.JustPushed) > 0 {
		tw.AppendRow(table.Row{"pushed", symbolLine(snap.JustPushed)})
	}
	tw.AppendRow(table.Row{"action", snap.LastAction})
	if snap.LastOperation != "" {
		tw.AppendRow(table.Row{"operation", snap.LastOperation})
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"row length", fmt.Sprintf("%s (current %d, in row %v)",
		dimension(snap.Shape.ExpectedRowLength), snap.Shape.CurrentRowLength, snap.Shape.InRow)})
	tw.AppendRow(table.Row{"matrix 1 columns", dimension(snap.Shape.Matrix1Cols)})
	tw.SetStyle(table.StyleLight)
	return tw
}

func historyAsTable(history []engine.HistoryEntry) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Input", "Action", "Stack"})
	for i, h := range history {
		action := h.Action
		if strings.HasPrefix(action, "ERROR") {
			action = text.FgRed.Sprint(action)
		}
		tw.AppendRow(table.Row{i, h.Input, action, h.Stack})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func tokensAsTable(tl tokenList) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"", "#", "Type", "Value"})
	for i, tok := range tl.Tokens {
		marker := ""
		if i == tl.Cursor {
			marker = "▶"
		}
		tw.AppendRow(table.Row{marker, i, tok.Type, tok.Value})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func stackAsTable(stack stackView) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Depth", "Symbol", "Kind"})
	for i, sym := range stack {
		kind := "nonterminal"
		switch {
		case sym == grammar.EndMarker:
			kind = "end marker"
		case sym.IsTerminal():
			kind = "terminal"
		}
		tw.AppendRow(table.Row{i, sym, kind})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func productionsAsTable(prods []grammar.Production) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Production", "Lookahead"})
	for i, p := range prods {
		la := "otherwise"
		if len(p.Lookahead) > 0 {
			names := make([]string, len(p.Lookahead))
			for j, tt := range p.Lookahead {
				names[j] = tt.String()
			}
			la = strings.Join(names, ", ")
		}
		tw.AppendRow(table.Row{i + 1, p, la})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// --- Helpers ---------------------------------------------------------------

func colorStatus(snap engine.Snapshot) string {
	switch snap.Phase {
	case engine.Accepted:
		return text.FgGreen.Sprint(snap.Status)
	case engine.Failed:
		return text.FgRed.Sprint(snap.Status)
	}
	return snap.Status
}

// tokenLine lists the tokens, with the lookahead in brackets if marked.
func tokenLine(tokens []grammar.Token, cursor int, mark bool) string {
	if len(tokens) == 0 {
		return "–"
	}
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
		if mark && i == cursor {
			values[i] = "⟨" + tok.Value + "⟩"
		}
	}
	return strings.Join(values, " ")
}

// stackLine lists the stack bottom to top.
func stackLine(stack []grammar.Symbol) string {
	if len(stack) == 0 {
		return "empty"
	}
	names := make([]string, len(stack))
	for i, sym := range stack {
		names[len(stack)-1-i] = sym.String()
	}
	return strings.Join(names, " ")
}

func symbolLine(syms []grammar.Symbol) string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

func dimension(n int) string {
	if n < 0 {
		return "–"
	}
	return fmt.Sprintf("%d", n)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
