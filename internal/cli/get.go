// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creachadair/jlazy"
)

func newGetCommand(g *globals) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "get FILE",
		Short: "Print the value of a node",
		Long: `Print the value of the node selected by --path.

A string is printed decoded, without quotation marks. Other values are
printed as their source text, which for objects and arrays is the complete
undecoded text of the value.`,
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
			out := cmd.OutOrStdout()
			if n.Type() == jlazy.String {
				s, err := n.Str()
				if err != nil {
					return fmt.Errorf("get: %w", err)
				}
				_, err = fmt.Fprintln(out, s)
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n", n.Text())
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "JSONPath of the node to print")
	if err := cmd.MarkFlagRequired("path"); err != nil {
		panic(err)
	}
	return cmd
}
