package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/sagan/gtts-synthesize/config"
	"github.com/sagan/gtts-synthesize/constants"
	"github.com/sagan/gtts-synthesize/features/synthesis"
	"github.com/sagan/gtts-synthesize/features/ttsfeature"
	"github.com/sagan/gtts-synthesize/util/stringutil"
	"github.com/sagan/gtts-synthesize/version"
)

var (
	flagEngine   string
	flagConfig   string
	flagLogLevel string
)

// Replaced in tests.
var newSynthesizer = ttsfeature.NewSynthesizer

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName() + " <text> <lang>",
		Short: "Convert text to speech and save it to a temp mp3 file (" + version.Version + ")",
		Long: `Convert text to speech and save it to a newly created temp mp3 file, then print the file path.

It uses Google Translate public TTS api by default, e.g. :
  http://translate.google.com/translate_tts?ie=UTF-8&q=bonjour&client=tw-ob&tl=fr .

The generated file is never deleted by this program. Use "-" as <text> to read text from stdin.

Flags are only recognized before <text>, and only while <text> <lang> still follow them,
so "%[1]s -ing en" speaks "-ing". Use "--" to end flags explicitly: "%[1]s -- --help en".

On success, stdout contains only the generated file path;
On failure, it exits with status 1 and prints "Error: <description>" to stderr.`,
		Args:               cobra.ArbitraryArgs,
		RunE:               doSynthesize,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	rootCmd.Long = fmt.Sprintf(rootCmd.Long, programName())
	rootCmd.Flags().StringVarP(&flagEngine, "engine", "e", "", constants.HELP_ENGINE)
	rootCmd.Flags().StringVarP(&flagConfig, "config", "", "", constants.HELP_CONFIG)
	rootCmd.Flags().StringVarP(&flagLogLevel, "log-level", "", "", constants.HELP_LOG_LEVEL)
	return rootCmd
}

func programName() string {
	return filepath.Base(os.Args[0])
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return synthesis.NewUsageError(fmt.Sprintf("Usage: %s <text> <lang>", programName()))
	}
	return nil
}

// splitArgs separates the leading run of known flags from the positional args.
// A flag is consumed only while at least two args remain after it,
// so text such as "-e" or "--config" is never taken for a flag.
func splitArgs(flags *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return flagArgs, args[i+1:]
		}
		flag, inline := lookupFlag(flags, args[i])
		if flag == nil || flag.Name == "help" {
			return flagArgs, args[i:]
		}
		n := 1
		if !inline && flag.NoOptDefVal == "" {
			n = 2
		}
		if len(args)-i-n < 2 {
			return flagArgs, args[i:]
		}
		flagArgs = append(flagArgs, args[i:i+n]...)
		i += n - 1
	}
	return flagArgs, nil
}

// lookupFlag matches "--name", "--name=value" or an exact "-x" shorthand.
func lookupFlag(flags *pflag.FlagSet, arg string) (flag *pflag.Flag, inline bool) {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, inline = strings.Cut(name, "=")
		return flags.Lookup(name), inline
	}
	if len(arg) == 2 && arg[0] == '-' {
		return flags.ShorthandLookup(arg[1:]), false
	}
	return nil, false
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func doSynthesize(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		// Help goes to stderr: stdout is reserved for the generated file path.
		cmd.SetOut(cmd.ErrOrStderr())
		cmd.Help()
		return checkArgs(cmd, nil)
	}
	flagArgs, args := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return err
	}
	if err := checkArgs(cmd, args); err != nil {
		return err
	}
	text, lang := args[0], args[1]
	if len(args) > 2 {
		log.Debugf("ignore extra args: %v", args[2:])
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err = config.SetupLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	if text == constants.STDIN {
		if text, err = readStdin(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	synthesizer, err := newSynthesizer(cfg.Engine, ttsfeature.Options{GoogleUrl: cfg.GoogleUrl})
	if err != nil {
		return err
	}
	filename, err := synthesis.NewInvoker(synthesizer).Synthesize(cmd.Context(), text, lang)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), filename)
	return err
}

func readStdin(input io.Reader) (string, error) {
	if file, ok := input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", fmt.Errorf("stdin is tty. Pipe text to it or pass text as argument")
	}
	text, err := stringutil.ReadText(input)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return stringutil.Clean(text), nil
}

// Run the program with args (excluding program name) and return the exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config.SetupLogging(constants.DEFAULT_LOG_LEVEL, stderr)
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if synthesis.KindOf(err) == synthesis.KindUsage {
			fmt.Fprintln(stderr, err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
