// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/ui/pretty"
)

func newLsCommand(g *globals) *cobra.Command {
	var path string
	var start, end int
	cmd := &cobra.Command{
		Use:   "ls FILE",
		Short: "List a page of the children of an object or array",
		Long: `List the members of an object or elements of an array from --start to
--end inclusive, with the type, length, and size of each.

Without --end, one page of children is listed, as set by page_size in the
configuration file.`,
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

			var kids []*jlazy.Node
			switch n.Type() {
			case jlazy.Object:
				kids, err = n.ObjectNodes(lo, hi)
			case jlazy.Array:
				kids, err = n.ArrayNodes(lo, hi)
			default:
				err = fmt.Errorf("cannot list the children of a %s", n.Type())
			}
			if err != nil {
				return fmt.Errorf("ls: %w", err)
			}

			s := g.styles
			tab := pretty.NewTable("KEY", "TYPE", "LEN", "CHARS")
			for _, kid := range kids {
				tab.Add(
					s.Key.Render(displayKey(kid.Key())),
					s.Type(kid.Type()),
					s.Dim.Render(strconv.Itoa(kid.Len())),
					s.Dim.Render(strconv.Itoa(kid.Chars())),
				)
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), tab.Render(&s.Header)); err != nil {
				return err
			}
			logPage(cmd, n, lo, len(kids))
			return nil
		},
	}
	addPageFlags(cmd, &path, &start, &end)
	return cmd
}
