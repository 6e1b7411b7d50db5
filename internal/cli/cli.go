package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	rotate "github.com/kei2100/rotatelog"
	"github.com/kei2100/rotatelog/internal/config"
	"github.com/kei2100/rotatelog/logger"
)

const usageText = `Usage: %s [options] FILE

Copies standard input to FILE, rotating it into numbered backups
(FILE "app.log" is rotated to "app.1.log", "app.2.log", ...).

Options:
        --max-file-size BYTES
                        The maximum size, in bytes, of the output file before
                        it is rotated. (default %d)
        --max-rotations NUM_FILES
                        The maximum number of file rotations before
                        discarding. 0 truncates the file instead. (default %d)
        --config FILE   Read options from a TOML file. Options given on the
                        command line take precedence.
    -h, --help          prints this help menu
`

// PrintUsage writes the usage text to w
func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, usageText, program, config.DefaultMaxFileSize, config.DefaultMaxRotations)
}

// Options holds the parsed command line
type Options struct {
	Help         bool
	ConfigPath   string
	MaxFileSize  uint64
	MaxRotations uint32
	Files        []string
	// set records the options given explicitly
	set map[string]bool
}

// ParseArgs parses the command line arguments, program name excluded.
// Options and FILE may appear in any order; everything after "--" is a FILE.
func ParseArgs(program string, args []string) (*Options, error) {
	opts := &Options{set: make(map[string]bool)}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.Uint64Var(&opts.MaxFileSize, "max-file-size", config.DefaultMaxFileSize, "")
	opts.MaxRotations = config.DefaultMaxRotations
	fs.Var((*uint32Value)(&opts.MaxRotations), "max-rotations", "")
	fs.StringVar(&opts.ConfigPath, "config", "", "")
	fs.BoolVar(&opts.Help, "h", false, "")
	fs.BoolVar(&opts.Help, "help", false, "")

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			opts.Files = append(opts.Files, rest...)
			break
		}
		opts.Files = append(opts.Files, rest[0])
		args = rest[1:]
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// uint32Value is a flag.Value rejecting numbers that do not fit in 32 bits
type uint32Value uint32

func (v *uint32Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*v = uint32Value(n)
	return nil
}

func (v *uint32Value) String() string {
	return strconv.FormatUint(uint64(*v), 10)
}

// Config resolves the configuration: defaults, then the config file, then the command line
func (o *Options) Config() (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if o.set["max-file-size"] {
		cfg.MaxFileSize = o.MaxFileSize
	}
	if o.set["max-rotations"] {
		cfg.MaxRotations = o.MaxRotations
	}
	if len(o.Files) > 0 {
		cfg.Output = o.Files[0]
	}
	return cfg, nil
}

// Run runs rotatelog and returns the process exit code.
// stdin is copied to the output file until EOF.
func Run(program string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := ParseArgs(program, args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		PrintUsage(stderr, program)
		return 1
	}
	if opts.Help {
		PrintUsage(stdout, program)
		return 0
	}

	logger.SetOutput(stderr)
	logger.SetPrefix(program + ": ")
	cfg, err := opts.Config()
	if err != nil {
		logger.Println(err)
		return 1
	}
	if cfg.Output == "" {
		fmt.Fprint(stderr, "Missing file argument!\n\n")
		PrintUsage(stderr, program)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		logger.Println(err)
		return 1
	}

	w, err := rotate.NewWriter(cfg.Output, append(cfg.Options(), rotate.WithLogger(logger.Default()))...)
	if err != nil {
		logger.Println(err)
		return 1
	}
	if _, err := w.ReadFrom(stdin); err != nil {
		logger.Println(err)
		w.Close()
		return 1
	}
	if err := w.Close(); err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

// Main runs rotatelog with the process arguments and standard streams
func Main() int {
	return Run(programName(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func programName() string {
	if len(os.Args) == 0 {
		return "rotatelog"
	}
	return os.Args[0]
}
