// Package main implements the syspath CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	syspath "github.com/battyone/sys/internal"
	"github.com/battyone/sys/internal/except"
	"github.com/battyone/sys/internal/fspath"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	syspath.SetupLogging()
}

var (
	configPath   string
	envFilePath  string
	platformName string
	basePath     string
)

func main() {
	ctx := context.Background()

	partsCmd := &cobra.Command{
		Use:   "parts PATH...",
		Short: "Decompose paths into their grammatical parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			pl := config.PathPlatform()
			descs := make([]syspath.Description, len(args))
			for i, arg := range args {
				descs[i] = syspath.Describe(pl.New(arg))
			}
			header := term.IsTerminal(int(os.Stdout.Fd()))
			return syspath.WriteDescriptions(os.Stdout, descs, header)
		},
	}

	var reverse bool
	elementsCmd := &cobra.Command{
		Use:   "elements PATH",
		Short: "List a path's elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			return syspath.WriteElements(os.Stdout, config.PathPlatform().New(args[0]), reverse)
		},
	}
	elementsCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "iterate from the end")

	absCmd := &cobra.Command{
		Use:   "abs PATH...",
		Short: "Make paths absolute without accessing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			resolver := config.Resolver()
			pl := config.PathPlatform()
			for _, arg := range args {
				abs, err := resolver.Absolute(pl.New(arg), config.BasePath())
				if err != nil {
					return err
				}
				fmt.Println(abs) //nolint:forbidigo
			}
			return nil
		},
	}

	canonCmd := &cobra.Command{
		Use:   "canon PATH...",
		Short: "Resolve paths to their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			pl := config.PathPlatform()
			paths := make([]fspath.Path, len(args))
			for i, arg := range args {
				paths[i] = pl.New(arg)
			}
			var errs []error
			results := syspath.CanonicalizeAll(cmd.Context(), config.Resolver(), paths, config.BasePath())
			for _, res := range results {
				if res.Err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", res.Input, res.Err))
					continue
				}
				fmt.Println(res.Output) //nolint:forbidigo
			}
			return errors.Join(errs...)
		},
	}

	var (
		match     string
		depth     int
		recursive bool
	)
	lsCmd := &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List directory entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			dir := config.PathPlatform().New(".")
			if len(args) > 0 {
				dir = config.PathPlatform().New(args[0])
			}
			resolver := config.Resolver()
			if recursive && !cmd.Flags().Changed("depth") {
				depth = syspath.DefaultWalkDepth
			}
			if depth > 1 {
				paths, err := syspath.Walk(cmd.Context(), resolver, dir, depth, match)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Println(p) //nolint:forbidigo
				}
				return nil
			}
			entries, err := syspath.List(resolver, dir, match)
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Printf("%v\t%s\n", entry.Type, entry.Name) //nolint:forbidigo
			}
			return nil
		},
	}
	lsCmd.Flags().StringVarP(&match, "match", "m", "", "only show entries matching this glob")
	lsCmd.Flags().IntVarP(&depth, "depth", "d", 1, "maximum depth, values above 1 list recursively")
	lsCmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "list recursively up to the default depth")

	var parents bool
	mkdirCmd := &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			resolver := config.Resolver()
			p := config.PathPlatform().New(args[0])
			var ok bool
			if parents {
				ok = resolver.CreateAll(p)
			} else {
				ok = resolver.Create(p)
			}
			if !ok {
				return fmt.Errorf("unable to create %s", p)
			}
			return nil
		},
	}
	mkdirCmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing ancestors")

	rmdirCmd := &cobra.Command{
		Use:   "rmdir PATH",
		Short: "Remove an empty directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			p := config.PathPlatform().New(args[0])
			if !config.Resolver().Remove(p) {
				return fmt.Errorf("unable to remove %s", p)
			}
			return nil
		},
	}

	cwdCmd := &cobra.Command{
		Use:   "cwd",
		Short: "Show the current directory",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			cwd, err := config.Resolver().CurrentPath()
			if err != nil {
				return err
			}
			fmt.Println(cwd) //nolint:forbidigo
			return nil
		},
	}

	exeCmd := &cobra.Command{
		Use:   "exe",
		Short: "Show the directory containing this program",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			dir := config.Resolver().ExecutablePath(cmd.Context())
			if dir.Empty() {
				return errors.New("unable to locate executable")
			}
			fmt.Println(dir) //nolint:forbidigo
			return nil
		},
	}

	rootCmd := &cobra.Command{Use: "syspath", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration")
	flags.StringVar(&envFilePath, "env-file", "", "dotenv file with SYSPATH_* overrides")
	flags.StringVar(&platformName, "platform", "", "path conventions, posix or windows")
	flags.StringVarP(&basePath, "base", "b", "", "directory relative paths are resolved against")
	except.Require(rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml", "toml"))
	except.Require(rootCmd.MarkPersistentFlagFilename("env-file"))
	rootCmd.AddCommand(
		partsCmd,
		elementsCmd,
		absCmd,
		canonCmd,
		lsCmd,
		mkdirCmd,
		rmdirCmd,
		cwdCmd,
		exeCmd,
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*syspath.Config, error) {
	if envFilePath != "" {
		if err := syspath.LoadEnvFile(envFilePath); err != nil {
			return nil, err
		}
	}
	var config *syspath.Config
	var err error
	if configPath != "" {
		config, err = syspath.ReadConfig(configPath)
	} else {
		config, err = syspath.FindConfig(".")
	}
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if platformName != "" {
		if _, ok := fspath.LookupPlatform(platformName); !ok {
			return nil, fmt.Errorf("unknown platform %q", platformName)
		}
		config.Platform = platformName
	}
	if basePath != "" {
		config.Base = basePath
	}
	level, err := config.Level()
	if err != nil {
		return nil, err
	}
	syspath.LogLevel.Set(level)
	return config, nil
}
