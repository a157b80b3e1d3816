package main

import (
	"errors"
	"fmt"

	"arkhive.dev/applauncher/internal/bundle"
	"arkhive.dev/applauncher/internal/configloader"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Name of the bundler application. Used to load the configuration.
const APPLICATION_NAME = "bundler"

var errVerifyFailed = errors.New("bundle verification failed")

var (
	problemColor = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

func newRootCommand() *cobra.Command {
	var (
		configurationFilePath string
		logLevel              string
	)
	root := &cobra.Command{
		Use:           "bundler",
		Short:         "Assemble and verify launcher application bundles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, configurationFilePath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				configuration.LogLevel = logLevel
			}
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(configuration.Level())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configurationFilePath, "config", "", "Configuration file path")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides configuration)")
	root.AddCommand(newBuildCommand(), newVerifyCommand())
	return root
}

func newBuildCommand() *cobra.Command {
	var (
		recipePath string
		outDir     string
		force      bool
	)
	command := &cobra.Command{
		Use:   "build",
		Short: "Assemble a bundle from a TOML recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := bundle.LoadRecipe(recipePath)
			if err != nil {
				return err
			}
			layout, err := bundle.Build(recipe, outDir, force)
			if err != nil {
				return fmt.Errorf("cannot build %s: %w", recipe.Name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), layout.Root)
			return nil
		},
	}
	command.Flags().StringVar(&recipePath, "recipe", "bundle.toml", "Recipe file path")
	command.Flags().StringVar(&outDir, "out", ".", "Output directory")
	command.Flags().BoolVar(&force, "force", false, "Replace an existing bundle")
	return command
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify APP",
		Short: "Check that a bundle's launcher will find its program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := bundle.Verify(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				successColor.Fprintf(out, "%s: ok\n", args[0])
				return nil
			}
			for _, problem := range problems {
				problemColor.Fprintln(out, problem.String())
			}
			return errVerifyFailed
		},
	}
}
