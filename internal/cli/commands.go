package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/image-steg-mcp/internal/imaging"
	"github.com/ironsheep/image-steg-mcp/internal/server"
	"github.com/ironsheep/image-steg-mcp/internal/stego"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses args, turning flag errors into usage errors. It returns
// false when help was requested and has been printed.
func (a *App) parseFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			a.printUsage(a.Stdout)
			return false, nil
		}
		return false, usageError("%v", err)
	}
	return true, nil
}

func (a *App) runEncode(path string, args []string) error {
	fs := newFlagSet("encode")
	var output string
	fs.StringVar(&output, "o", a.defaultOutput(), "Output file path (.png or .bmp)")
	fs.StringVar(&output, "output", a.defaultOutput(), "Output file path (.png or .bmp)")

	ok, err := a.parseFlags(fs, args)
	if !ok {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("encode takes exactly one text argument, got %d", fs.NArg())
	}
	text := fs.Arg(0)

	if err := imaging.ValidateCoverFormat(path); err != nil {
		return err
	}
	if err := imaging.ValidateLosslessFormat(output); err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	encoded, err := stego.NewEncoder(stego.DefaultConfig()).Encode(img, text)
	if err != nil {
		return err
	}

	if err := imaging.SaveLossless(output, encoded); err != nil {
		return err
	}
	if a.debug() {
		log.Printf("Encoded %d characters into %s", len([]rune(text)), output)
	}

	fmt.Fprintln(a.Stdout, output)
	return nil
}

func (a *App) runDecode(path string, args []string) error {
	if len(args) != 0 {
		return usageError("decode takes no arguments")
	}
	if err := imaging.ValidateLosslessFormat(path); err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	text, err := stego.NewDecoder(stego.DefaultConfig()).Decode(img)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Stdout, text)
	return nil
}

func (a *App) runCapacity(path string, args []string) error {
	if len(args) != 0 {
		return usageError("capacity takes no arguments")
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	report := stego.NewEncoder(stego.DefaultConfig()).Capacity(img)
	fmt.Fprintf(a.Stdout, "%dx%d: %d bits (%d characters)\n",
		report.Width, report.Height, report.MaxPayloadBits, report.MaxCharacters)
	return nil
}

func (a *App) runHeader(path string, args []string) error {
	if len(args) != 0 {
		return usageError("header takes no arguments")
	}

	img, err := imaging.NewImageCache().Load(path)
	if err != nil {
		return err
	}

	cfg := stego.DefaultConfig()
	value, err := stego.NewDecoder(cfg).PeekHeader(img)
	if err != nil {
		return err
	}

	b := img.Bounds()
	maxBits := cfg.MaxPayloadBits(b.Dx(), b.Dy())
	status := "valid"
	if value%stego.BitsPerChar != 0 || value > uint64(maxBits) {
		status = "invalid"
	}
	fmt.Fprintf(a.Stdout, "%d bits (%s, capacity %d)\n", value, status, maxBits)
	return nil
}

func (a *App) runServe(args []string) error {
	fs := newFlagSet("serve")
	var output string
	fs.StringVar(&output, "o", a.defaultOutput(), "Default output path for stego_encode")
	fs.StringVar(&output, "output", a.defaultOutput(), "Default output path for stego_encode")

	ok, err := a.parseFlags(fs, args)
	if !ok {
		return err
	}
	if fs.NArg() != 0 {
		return usageError("serve takes no positional arguments")
	}

	if a.debug() {
		log.Printf("Image steg MCP server %s (built %s, commit %s)",
			a.Build.Version, a.Build.BuildTime, a.Build.GitCommit)
	}

	srv := server.NewWithOptions(server.Options{
		DefaultOutput: output,
		Debug:         a.debug(),
	})
	if err := srv.Serve(a.Stdin, a.Stdout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
