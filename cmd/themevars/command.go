package main

import "github.com/spf13/cobra"

// Command builds the themevars command tree bound to a.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "themevars",
		Short: "Generate CSS custom properties from nested color definitions",
		Long: `themevars turns nested color definitions into CSS custom properties.

Sources are theme files (.json, .yaml, .yml, .toml), built-in presets
(preset:dark, preset:light) or chroma styles (chroma:monokai).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		cssOutput string
		cssCopy   bool
	)
	cssCmd := &cobra.Command{
		Use:   "css SOURCE...",
		Short: "Write a stylesheet with one .theme-<name> class per source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.CSS(cmd.Context(), args, cssOutput, cssCopy)
		},
	}
	cssCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "write to file instead of stdout")
	cssCmd.Flags().BoolVarP(&cssCopy, "copy", "c", false, "copy to the clipboard instead of stdout")

	var configOutput string
	configCmd := &cobra.Command{
		Use:   "config SOURCE",
		Short: "Print the colors config of var() references as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Config(cmd.Context(), args[0], configOutput)
		},
	}
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "write to file instead of stdout")

	var varsOutput string
	varsCmd := &cobra.Command{
		Use:   "vars SOURCE",
		Short: "Print the custom-property map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Vars(cmd.Context(), args[0], varsOutput)
		},
	}
	varsCmd.Flags().StringVarP(&varsOutput, "output", "o", "", "write to file instead of stdout")

	previewCmd := &cobra.Command{
		Use:   "preview [SOURCE...]",
		Short: "Preview themes as terminal swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Preview(cmd.Context(), args)
		},
	}

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "List chroma styles usable as chroma:<style>",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Styles()
		},
	}

	root.AddCommand(cssCmd, configCmd, varsCmd, previewCmd, stylesCmd)
	return root
}
