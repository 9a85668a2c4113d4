// Package cli implements the image-steg command line.
//
// Usage:
//
//	image-steg <path> encode [-o <file>] <text>
//	image-steg <path> decode
//	image-steg <path> capacity
//	image-steg <path> header
//	image-steg serve [-o <file>]
//	image-steg version
//	image-steg help
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-steg-mcp/internal/server"
)

// Environment variables read at startup.
const (
	EnvLogLevel = "IMAGE_STEG_LOG_LEVEL"
	EnvOutput   = "IMAGE_STEG_OUTPUT"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// BuildInfo identifies the binary. The fields are normally set with -ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// App is one invocation of the command line.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Build  BuildInfo

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// errUsage marks a malformed command line. It is reported with the usage text
// and exit code ExitUsage.
var errUsage = errors.New("usage")

func usageError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// New returns an App wired to the process's standard streams.
func New(build BuildInfo) *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Build:  build,
		Getenv: os.Getenv,
	}
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return os.Getenv(key)
	}
	return a.Getenv(key)
}

func (a *App) debug() bool {
	return a.getenv(EnvLogLevel) == "debug"
}

// defaultOutput is the encode destination when -o is not given.
func (a *App) defaultOutput() string {
	if out := a.getenv(EnvOutput); out != "" {
		return out
	}
	return server.DefaultOutputPath
}

// Run executes args (without the program name) and returns the exit code.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		a.printUsage(a.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "version", "--version", "-v":
		a.printVersion()
		return ExitOK
	case "help", "--help", "-h":
		a.printUsage(a.Stdout)
		return ExitOK
	case "serve":
		err = a.runServe(args[1:])
	default:
		err = a.runImageCommand(args)
	}

	return a.exitCode(err)
}

func (a *App) exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.Stderr, "error: %v\n\n", err)
		a.printUsage(a.Stderr)
		return ExitUsage
	default:
		fmt.Fprintf(a.Stderr, "error: %v\n", err)
		return ExitFailure
	}
}

// runImageCommand handles the "<path> <command> ..." forms.
func (a *App) runImageCommand(args []string) error {
	if len(args) < 2 {
		return usageError("missing command after %q", args[0])
	}
	path, cmd, rest := args[0], args[1], args[2:]

	if a.debug() {
		log.Printf("%s %s", cmd, path)
	}

	switch cmd {
	case "encode", "-e", "--encode":
		return a.runEncode(path, rest)
	case "decode", "-d", "--decode":
		return a.runDecode(path, rest)
	case "capacity":
		return a.runCapacity(path, rest)
	case "header":
		return a.runHeader(path, rest)
	default:
		return usageError("unknown command %q", cmd)
	}
}

func (a *App) printVersion() {
	fmt.Fprintf(a.Stdout, "image-steg %s\n", a.Build.Version)
	fmt.Fprintf(a.Stdout, "  Build time: %s\n", a.Build.BuildTime)
	fmt.Fprintf(a.Stdout, "  Git commit: %s\n", a.Build.GitCommit)
}

func (a *App) printUsage(w io.Writer) {
	fmt.Fprint(w, `image-steg - hide text in the least significant bits of an image

USAGE:
    image-steg <path> encode [-o <file>] <text>
    image-steg <path> decode
    image-steg <path> capacity
    image-steg <path> header
    image-steg serve [-o <file>]
    image-steg version
    image-steg help

COMMANDS:
    encode      Hide <text> in the image at <path> and write a lossless copy.
                Cover images may be png, jpeg, gif, bmp, tiff or webp.
                -o <file>   Output path, .png or .bmp (default: output.png)
    decode      Print the text hidden in a png or bmp image.
    capacity    Print how many bits and characters the image can carry.
    header      Print the raw length header without decoding.
    serve       Run the MCP server on stdin/stdout.

ENVIRONMENT:
    IMAGE_STEG_OUTPUT=<file>      Default output path for encode
    IMAGE_STEG_LOG_LEVEL=debug    Enable debug logging to stderr

EXIT STATUS:
    0 success, 1 failure, 2 usage error
`)
}
