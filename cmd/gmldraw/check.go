package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gmldraw/examples"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [script]",
		Short: "Parse a GML script and list its drawings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			example, _ := cmd.Flags().GetString("example")
			script, err := loadScript(args, example)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range script.Drawings {
				fmt.Fprintf(out, "%s\t%d strings\t%s\n", d.Name, len(d.Commands), d.Pos)
			}
			return nil
		},
	}
	cmd.Flags().String("example", examples.Default, "Bundled script to check when no file is given")
	return cmd
}
