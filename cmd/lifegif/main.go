// Command lifegif runs Game of Life boards for a fixed number of generations
// and writes each run as an animated GIF.
//
//	lifegif -in glider.txt -frames 120 -out glider.gif
//	lifegif -w 80 -h 60 -seed 7 -out random.gif
//	lifegif -out gifs/ boards/*.txt
//	lifegif -emit -w 20 -h 10 -seed 3 > board.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"lifeline/internal/app"
	"lifeline/internal/export"
	"lifeline/internal/field"
	"lifeline/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type job struct {
	in  string
	out string
}

// options holds the flags only lifegif understands.
type options struct {
	final  string
	emit   bool
	stdout io.Writer
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	opts := options{stdout: os.Stdout}
	flag.StringVar(&opts.final, "final", "", "also write the last generation as a board file (single board only)")
	flag.BoolVar(&opts.emit, "emit", false, "print the random board for -w, -h and -seed as text and exit")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lifegif: ")
	if cfg.Quiet {
		log.SetOutput(io.Discard)
	}

	if err := run(context.Background(), cfg, flag.Args(), opts); err != nil {
		fmt.Fprintln(os.Stderr, "lifegif:", err)
		os.Exit(1)
	}
}

// plan maps the inputs onto output paths. With no positional arguments a
// single board (cfg.In or a random one) is written to cfg.Out; otherwise every
// argument is a board file written into the cfg.Out directory.
func plan(cfg *app.Config, args []string) []job {
	if len(args) == 0 {
		return []job{{in: cfg.In, out: cfg.Out}}
	}
	jobs := make([]job, 0, len(args))
	for _, in := range args {
		name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".gif"
		jobs = append(jobs, job{in: in, out: filepath.Join(cfg.Out, name)})
	}
	return jobs
}

func run(ctx context.Context, cfg *app.Config, args []string, opts options) error {
	if opts.emit {
		return emit(opts.stdout, cfg)
	}
	if cfg.Frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	jobs := plan(cfg, args)
	if len(args) > 0 {
		if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
			return err
		}
	}
	if len(jobs) == 1 {
		return exportBoard(cfg, jobs[0], cfg.Workers, opts.final)
	}
	if opts.final != "" {
		return fmt.Errorf("-final needs a single board, got %d", len(jobs))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return exportBoard(cfg, j, 1, "")
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("exported %d boards to %s", len(jobs), cfg.Out)
	return nil
}

// emit writes the random board the export would start from, so it can be
// edited and fed back in with -in.
func emit(w io.Writer, cfg *app.Config) error {
	fd, err := field.Random(cfg.Width, cfg.Height, cfg.Seed)
	if err != nil {
		return err
	}
	return field.Write(w, fd)
}

func exportBoard(cfg *app.Config, j job, workers int, final string) error {
	var (
		grid *life.Grid
		err  error
	)
	if j.in != "" {
		grid, err = app.LoadFile(j.in)
	} else {
		grid, err = life.NewRandom(cfg.Width, cfg.Height, cfg.Seed)
	}
	if err != nil {
		return err
	}
	grid.SetWorkers(workers)

	frames := life.Run(grid, cfg.Frames)
	if err := export.Save(j.out, grid.Width(), grid.Height(), frames, cfg.ExportOptions()); err != nil {
		return err
	}
	log.Printf("wrote %d frames (%dx%d, population %d) to %s", len(frames), grid.Width(), grid.Height(), grid.Population(), j.out)

	if final == "" {
		return nil
	}
	f, err := os.Create(final)
	if err != nil {
		return err
	}
	if err := field.Write(f, field.FromSnapshot(frames[len(frames)-1])); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
