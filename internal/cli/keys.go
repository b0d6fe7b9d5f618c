// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/logging"
	"github.com/creachadair/jlazy/internal/ui/pretty"
)

func newKeysCommand(g *globals) *cobra.Command {
	var path string
	var start, end int
	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List a page of the member names of an object",
		Long: `List the member names of an object from --start to --end inclusive.

Without --end, one page of names is listed, as set by page_size in the
configuration file. Only the object itself is indexed; member values are
not examined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := g.pageBounds(start, end)
			if err != nil {
				return err
			}
			doc, err := g.openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := doc.resolve(path)
			if err != nil {
				return err
			}
			keys, err := n.Keys(lo, hi)
			if err != nil {
				return fmt.Errorf("keys: %w", err)
			}

			tab := pretty.NewTable()
			for i, key := range keys {
				tab.Add(g.styles.Dim.Render(strconv.Itoa(lo+i)), g.styles.Key.Render(displayKey(key)))
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), tab.Render(nil)); err != nil {
				return err
			}
			logPage(cmd, n, lo, len(keys))
			return nil
		},
	}
	addPageFlags(cmd, &path, &start, &end)
	return cmd
}

// displayKey renders a member name for a listing. Names that would not print
// legibly are quoted.
func displayKey(key string) string {
	if q := jlazy.Quote(key); key == "" || q[1:len(q)-1] != key {
		return q
	}
	return key
}

// logPage logs the extent of a page of count entries of n starting at lo.
func logPage(cmd *cobra.Command, n *jlazy.Node, lo, count int) {
	logger := logging.FromContext(cmd.Context())
	if rest := n.Len() - lo - count; rest > 0 {
		logger.Info("more entries follow",
			logging.FieldStart, lo+count,
			logging.FieldCount, rest,
		)
	} else {
		logger.Debug("listed entries",
			logging.FieldStart, lo,
			logging.FieldEnd, lo+count-1,
			logging.FieldCount, count,
		)
	}
}
