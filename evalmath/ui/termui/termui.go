// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'evalmath.cli'.
func trace() tracing.Trace {
	return tracing.Select("evalmath.cli")
}

// Formatter prints items to a writer. It returns false if it is unable to
// format an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings and tables.
type DefaultFormatter struct{}

// Format prints item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		w.Write([]byte("▶ "))
		if _, err := w.Write([]byte(t)); err != nil {
			return false, err
		}
		w.Write([]byte{'\n'})
		return true, nil
	case table.Writer:
		if t == nil {
			w.Write([]byte("▶ (empty table)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	case fmt.Stringer:
		return df.Format(t.String(), w)
	default:
		w.Write([]byte("▶ "))
		w.Write([]byte(fmt.Sprintf("object of type %T\n", t)))
		return true, nil
	}
}

// SymbolListing selects the kind of symbols to list.
type SymbolListing int

// Kinds of symbol listings
const (
	ListVariables SymbolListing = iota
	ListFunctions
)

// SymbolLister is implemented by interpreters which are able to list the
// symbols they know of. The REPL calls it for commands 'vars' and 'funcs'.
type SymbolLister interface {
	ListSymbols(SymbolListing) table.Writer
}
