package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gmldraw/examples"
	"gmldraw/internal/interpreter"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a GML script and render the result",
		Long:  `Runs every drawing of the script (or only those named with --drawing) against one drawing context. Without a script the bundled example is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			example, _ := cmd.Flags().GetString("example")
			drawings, _ := cmd.Flags().GetStringSlice("drawing")
			metricsPath, _ := cmd.Flags().GetString("metrics")

			script, err := loadScript(args, example)
			if err != nil {
				return err
			}
			s, err := newSession(cfg, log)
			if err != nil {
				return err
			}
			if err := script.Exec(s.interp, drawings...); err != nil {
				return err
			}
			log.Debug("run finished", "state", s.interp.Context().String())

			if err := s.flush(cmd.OutOrStdout()); err != nil {
				return err
			}
			return s.writeMetrics(metricsPath)
		},
	}

	cmd.Flags().StringSliceP("drawing", "d", nil, "Drawing to run (repeatable, default all)")
	cmd.Flags().String("example", examples.Default, "Bundled script to run when no file is given")
	return cmd
}

// loadScript parses the file named in args, or the bundled example.
func loadScript(args []string, example string) (*interpreter.Script, error) {
	if len(args) > 0 {
		return interpreter.ParseFile(args[0])
	}
	name := example + ".gml"
	data, err := examples.FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no bundled example %q", example)
	}
	return interpreter.ParseNamed(name, string(data))
}
