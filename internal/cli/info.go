// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy/internal/ui/pretty"
	"github.com/creachadair/jlazy/jpath"
)

func newInfoCommand(g *globals) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Describe a node of a JSON document",
		Long: `Print the type, source span, size, and location of a node.

FILE may be "-" to read standard input. By default the root is described;
use --path to select another node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := doc.resolve(path)
			if err != nil {
				return err
			}

			s := g.styles
			tab := pretty.NewTable()
			tab.Add(s.Bold.Render("path"), s.Path.Render(jpath.Format(n)))
			tab.Add(s.Bold.Render("type"), s.Type(n.Type()))
			tab.Add(s.Bold.Render("span"), n.Span().String())
			tab.Add(s.Bold.Render("chars"), strconv.Itoa(n.Chars()))
			tab.Add(s.Bold.Render("length"), strconv.Itoa(n.Len()))
			tab.Add(s.Bold.Render("location"), n.Location().String())
			_, err = fmt.Fprint(cmd.OutOrStdout(), tab.Render(nil))
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "JSONPath of the node to describe (default: the root)")
	return cmd
}
