// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy"
	"github.com/creachadair/jlazy/internal/ui/pretty"
	"github.com/creachadair/jlazy/jpath"
)

func newPathsCommand(g *globals) *cobra.Command {
	var path string
	var depth int
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "Print the paths of the nodes of a document",
		Long: `Print the JSONPath of each node under --path, in source order, down to
--depth levels below it. A negative depth prints every node, which indexes
the whole subtree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.openDocument(cmd, args[0])
			if err != nil {
				return err
			}
			top, err := doc.resolve(path)
			if err != nil {
				return err
			}

			s := g.styles
			tab := pretty.NewTable()
			base := top.Depth()
			if err := jlazy.Walk(top, func(n *jlazy.Node) error {
				tab.Add(s.Path.Render(jpath.Format(n)), s.Type(n.Type()))
				if depth >= 0 && n.Depth()-base >= depth {
					return jlazy.SkipChildren
				}
				return nil
			}); err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(tab.Render(nil)))
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "JSONPath of the node to start from (default: the root)")
	cmd.Flags().IntVar(&depth, "depth", 1, "maximum depth below the starting node")
	return cmd
}
