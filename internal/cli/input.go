// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/logging"
	"github.com/creachadair/jlazy/jpath"
)

// stdinName is the file argument that denotes standard input.
const stdinName = "-"

// A document is an input file indexed for inspection.
type document struct {
	name   string
	p      *jlazy.Parser
	root   *jlazy.Node
	logger *log.Logger
}

// openDocument reads and indexes the named input file. If HuJSON input is
// enabled, comments and trailing commas are replaced by whitespace first, so
// offsets in errors still refer to the original text.
func (g *globals) openDocument(cmd *cobra.Command, name string) (*document, error) {
	cmd.SetContext(logging.WithFields(cmd.Context(), logging.FieldFile, name))
	logger := logging.FromContext(cmd.Context())

	var data []byte
	var err error
	if name == stdinName {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	logger.Debug("read input", logging.FieldBytes, len(data))

	if g.cfg.HuJSON {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("%s: standardize: %w", name, err)
		}
	}

	p := jlazy.NewParser(data)
	root, err := p.Root()
	if err != nil {
		var terr *jlazy.TokenError
		if errors.As(err, &terr) {
			return nil, fmt.Errorf("%s:%v: %w", name, p.LineCol(terr.Offset), err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	} else if root == nil {
		return nil, fmt.Errorf("%s: empty input", name)
	}
	logger.Debug("indexed root",
		logging.FieldType, root.Type(),
		logging.FieldLength, root.Len(),
	)
	return &document{name: name, p: p, root: root, logger: logger}, nil
}

// resolve returns the node of d selected by the JSONPath expression expr.
func (d *document) resolve(expr string) (*jlazy.Node, error) {
	n := d.root
	if expr != "" {
		e, err := jpath.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", expr, err)
		}
		var ok bool
		n, ok = e.Resolve(d.root)
		if !ok {
			return nil, fmt.Errorf("%s: path %s not found", d.name, e)
		}
	}
	d.logger.Debug("resolved node",
		logging.FieldPath, jpath.Format(n),
		logging.FieldSpan, n.Span().String(),
		logging.FieldChars, n.Chars(),
		logging.FieldLocation, n.Location().String(),
	)
	return n, nil
}

// pageBounds returns the inclusive bounds of a page of entries. A negative
// end means a page of the configured size beginning at start.
func (g *globals) pageBounds(start, end int) (int, int, error) {
	if start < 0 {
		return 0, 0, fmt.Errorf("invalid start %d", start)
	}
	if end < 0 {
		end = start + g.cfg.PageSize - 1
	} else if end < start {
		return 0, 0, fmt.Errorf("end %d is before start %d", end, start)
	}
	return start, end, nil
}

// addPageFlags registers the --path, --start, and --end flags of a paging
// command.
func addPageFlags(cmd *cobra.Command, path *string, start, end *int) {
	cmd.Flags().StringVar(path, "path", "", "JSONPath of the node to list (default: the root)")
	cmd.Flags().IntVar(start, "start", 0, "index of the first entry to list")
	cmd.Flags().IntVar(end, "end", -1, "index of the last entry to list (default: one page)")
}
