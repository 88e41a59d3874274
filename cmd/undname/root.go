package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/undname/undname/demangle"
)

var (
	outputFile string
	output     io.Writer

	filterMode bool
	verbose    bool
	noColor    bool

	logger = zap.NewNop()
)

var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "undname <mangled-name>",
	Short: "Demangle MSVC C++ symbol names",
	Long: `undname decodes MSVC-style mangled C++ symbol names into readable
C++ declarations.

With --filter it instead reads names from stdin, one per line, and writes
the demangled form of each. Lines that are not mangled names, or that fail
to decode, pass through unchanged.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if filterMode {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			logger = l
		}
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
			noColor = true
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
		logger.Sync()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().BoolVarP(&filterMode, "filter", "f", false, "read names from stdin, one per line")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decode diagnostics to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// styled applies a lipgloss style when writing to an interactive terminal.
// Redirected output and --no-color stay plain.
func styled(s lipgloss.Style, text string) string {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return s.Render(text)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if filterMode {
		return runFilter()
	}

	name := args[0]
	start := time.Now()
	decoded, err := demangle.Demangle(name)
	if err != nil {
		logger.Error("decode failed",
			zap.String("name", name),
			zap.Error(err))
		return err
	}
	logger.Debug("decoded",
		zap.String("name", name),
		zap.String("result", decoded),
		zap.Duration("took", time.Since(start)))

	fmt.Fprintln(output, styled(resultStyle, decoded))
	return nil
}

func runFilter() error {
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	w := bufio.NewWriter(output)
	defer w.Flush()

	for sc.Scan() {
		line := sc.Text()
		if !demangle.IsMangled(line) {
			fmt.Fprintln(w, line)
			continue
		}
		decoded, err := demangle.Demangle(line)
		if err != nil {
			logger.Debug("passing through",
				zap.String("name", line),
				zap.Error(err))
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, decoded)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
