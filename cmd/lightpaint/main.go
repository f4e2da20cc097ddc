package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/ironsheep/lightpaint/internal/composite"
	"github.com/ironsheep/lightpaint/internal/imaging"
	"github.com/ironsheep/lightpaint/internal/mapper"
	"github.com/ironsheep/lightpaint/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const argCount = 6

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "lightpaint"
	app.Usage = "combine a burst of photos into a single light painting"
	app.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	app.ArgsUsage = "R G B THRESHOLD SOURCE_DIR DEST_FILE"
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"LIGHTPAINT_VERBOSE"},
			Usage:   "log every merged image",
		},
		&cli.StringSliceFlag{
			Name:    "ext",
			EnvVars: []string{"LIGHTPAINT_EXTENSIONS"},
			Usage:   "file extension to include, case-sensitive (repeatable)",
		},
	}

	app.Action = run

	return app
}

func run(c *cli.Context) error {
	if c.NArg() != argCount {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(fmt.Sprintf("expected %d arguments, got %d", argCount, c.NArg()), 1)
	}
	args := c.Args().Slice()

	target, err := mapper.ParseColor(args[0], args[1], args[2])
	if err != nil {
		return cli.Exit(err, 1)
	}
	tolerance, err := mapper.ParseTolerance(args[3])
	if err != nil {
		return cli.Exit(err, 1)
	}
	srcDir, dest := args[4], args[5]

	if _, err := imaging.EncoderFor(dest); err != nil {
		return cli.Exit(err, 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	if !imaging.IsLossless(dest) {
		fmt.Fprintf(c.App.ErrWriter, "warning: %s is lossy, the result will not be pure black and white\n", dest)
	}

	dir, err := source.Scan(srcDir, c.StringSlice("ext"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("found %d images in %s", dir.Len(), srcDir)

	m := mapper.New(mapper.Config{Target: target, Tolerance: tolerance})
	out, ok, err := composite.New(m, logger).Merge(dir)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if !ok {
		return cli.Exit(source.ErrNoImages, 1)
	}

	if err := imaging.Save(dest, out); err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("wrote %s (%dx%d, %s pixels lit)", dest, out.Rect.Dx(), out.Rect.Dy(), humanize.Comma(int64(mapper.MatchCount(out))))

	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
