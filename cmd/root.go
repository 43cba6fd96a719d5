package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gopak/sift/internal/assets"
	"github.com/gopak/sift/internal/config"
	"github.com/gopak/sift/internal/grep"
	"github.com/gopak/sift/internal/input"
	"github.com/gopak/sift/internal/logging"
	"github.com/gopak/sift/internal/search"
	"github.com/gopak/sift/internal/ui/console"
)

var version = "dev"

type options struct {
	cfgFile     string
	verbose     bool
	ignoreCase  bool
	invert      bool
	regex       bool
	color       string
	listColors  bool
	showConfig  bool
	writeConfig bool
	yes         bool
}

func (o *options) standalone() bool { return o.listColors || o.showConfig || o.writeConfig }

// NewRootCmd builds the sift command. Input, output and error streams come
// from the command so callers can redirect them.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "sift [flags] NEEDLE [FILE]",
		Short: "Print lines that match a needle",
		Long: "sift prints the lines of FILE, or standard input, that contain NEEDLE.\n" +
			"NEEDLE is used as a Perl-compatible pattern when it parses as one and\n" +
			"as literal text otherwise.",
		Args: func(cmd *cobra.Command, args []string) error {
			if o.standalone() {
				return cobra.MaximumNArgs(0)(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/sift); all *.yaml in that directory are merged")
	f.BoolVar(&o.verbose, "verbose", false, "print diagnostics to stderr")
	f.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "ignore case distinctions")
	f.BoolVarP(&o.invert, "invert-match", "v", false, "select non-matching lines")
	f.BoolVarP(&o.regex, "regex", "r", false, "treat NEEDLE as a pattern (a hint unless regex_flag is authoritative)")
	f.StringVarP(&o.color, "color", "c", "", "highlight matches with the named color")
	f.BoolVar(&o.listColors, "list-colors", false, "list accepted color names and exit")
	f.BoolVar(&o.showConfig, "show-config", false, "show the effective configuration and exit")
	f.BoolVar(&o.writeConfig, "write-config", false, "write the default config.yaml into the config directory and exit")
	f.BoolVarP(&o.yes, "yes", "y", false, "with --write-config, overwrite without prompting")
	return cmd
}

var rootCmd = NewRootCmd()

func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, o *options, args []string) error {
	logging.SetVerbose(o.verbose)
	out := cmd.OutOrStdout()

	if o.listColors {
		_, err := fmt.Fprint(out, console.RenderColors())
		return err
	}

	cfgDir := configDir(o.cfgFile)
	if o.writeConfig {
		p, err := console.WriteDefaultConfig(cfgDir, o.yes, console.SurveyConfirm)
		if err != nil {
			return err
		}
		if p == "" {
			logging.Info("config left unchanged")
			return nil
		}
		logging.Info("wrote " + p)
		return nil
	}

	cfg, files, err := loadConfig(cfgDir)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogFile); err != nil {
		return fmt.Errorf("log_file: %w", err)
	}
	defer logging.Close()
	logging.Debug(fmt.Sprintf("config dir %s, %d file(s)", cfgDir, len(files)))

	if o.showConfig {
		_, err := fmt.Fprint(out, console.RenderConfig(cfg, files))
		return err
	}

	req, err := buildRequest(cmd, o, cfg, args[0])
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 2 {
		path = args[1]
	}
	return grep.Run(input.ForPath(path, cmd.InOrStdin()), req, out)
}

func buildRequest(cmd *cobra.Command, o *options, cfg config.Config, needle string) (grep.Request, error) {
	timeout, err := cfg.MatchTimeout()
	if err != nil {
		return grep.Request{}, err
	}
	req := grep.Request{
		Needle:       needle,
		IgnoreCase:   o.ignoreCase,
		Invert:       o.invert,
		Color:        o.color,
		MatchTimeout: timeout,
	}
	if !cmd.Flags().Changed("ignore-case") {
		req.IgnoreCase = cfg.IgnoreCaseDefault()
	}
	if !cmd.Flags().Changed("color") {
		req.Color = cfg.Color
	}
	switch {
	case !cfg.RegexAuthoritative():
		if o.regex {
			logging.Debug("-r is advisory; the needle's syntax decides the match kind")
		}
	case o.regex:
		req.Mode = search.ModePattern
	default:
		req.Mode = search.ModeLiteral
	}
	return req, nil
}

func configDir(cfgFile string) string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	return config.DefaultDir()
}

func loadConfig(dir string) (config.Config, []string, error) {
	files, err := config.FindFiles(dir)
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig(), files)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config error: %w", err)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return config.Config{}, nil, errors.New("schema error: " + err.Error())
	}
	return cfg, files, nil
}
