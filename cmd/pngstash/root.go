package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngstash/png"
)

// chunkTypeFlag is a pflag.Value holding an optional chunk type.
type chunkTypeFlag struct {
	typ png.ChunkType
	set bool
}

var _ pflag.Value = (*chunkTypeFlag)(nil)

func (f *chunkTypeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.typ.String()
}

func (f *chunkTypeFlag) Set(s string) error {
	if err := f.typ.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	f.set = true
	return nil
}

func (f *chunkTypeFlag) Type() string {
	return "chunk-type"
}

// logWriter routes log output to w. It implements io.Closer so the logger
// does not write terminal colors to stdout.
type logWriter struct {
	io.Writer
}

func (logWriter) Close() error { return nil }

// parseTypeArg validates a positional chunk type argument.
func parseTypeArg(arg string) (png.ChunkType, error) {
	var t png.ChunkType
	if err := t.UnmarshalText([]byte(arg)); err != nil {
		return t, errors.Wrapf(err, "invalid chunk type %q", arg)
	}
	return t, nil
}

// typeCommand builds a subcommand whose first positional arg is a chunk type.
func typeCommand(use, short string, minArgs, maxArgs int, run func(ctx context.Context, t png.ChunkType, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(minArgs, maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTypeArg(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), t, args[1:])
		},
	}
}

// newRootCmd builds the command tree. Command output goes to stdout, logs
// go to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}

	root := &cobra.Command{
		Use:           "pngstash",
		Short:         "Hide messages in PNG chunks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.quiet {
				logger.Switch(logWriter{io.Discard})
			} else {
				logger.Switch(logWriter{stderr})
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.file, "file", "f", "", "path of the PNG file")
	flags.BoolVar(&a.strict, "strict", false, "reject chunks whose type has the reserved bit set")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "discard log output, errors are still reported")
	root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		typeCommand("encode <type> <message> [output]", "Encode a message in a PNG file", 2, 3,
			func(ctx context.Context, t png.ChunkType, args []string) error {
				output := a.file
				if len(args) == 2 {
					output = args[1]
				}
				return a.encode(ctx, t, args[0], output)
			}),
		typeCommand("decode <type>", "Show the message stored in a PNG file", 1, 1,
			func(ctx context.Context, t png.ChunkType, args []string) error {
				return a.decode(ctx, t)
			}),
		typeCommand("remove <type>", "Remove a message from a PNG file", 1, 1,
			func(ctx context.Context, t png.ChunkType, args []string) error {
				return a.remove(ctx, t)
			}),
		newPrintCmd(a),
	)
	return root
}

// execute runs the command line and returns the process exit code. Failures
// are reported on stderr regardless of --quiet.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "pngstash failed, err %+v\n", err)
		return 1
	}
	return 0
}

func newPrintCmd(a *app) *cobra.Command {
	only := &chunkTypeFlag{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print all chunks in a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *png.ChunkType
			if only.set {
				filter = &only.typ
			}
			return a.print(cmd.Context(), filter)
		},
	}
	cmd.Flags().Var(only, "only", "print only chunks of this type")
	return cmd
}
