// Command voxtrace traces the rays listed in a job file and writes each voxel path
// as a checksummed binary frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/zeusync/voxkit/internal/config"
	"github.com/zeusync/voxkit/internal/core/events/bus"
	"github.com/zeusync/voxkit/internal/core/observability/log"
	"github.com/zeusync/voxkit/internal/injector"
	"github.com/zeusync/voxkit/internal/trace"
)

type options struct {
	configPath string
	jobsPath   string
	outPath    string
	verify     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (default: built-in defaults plus VOXKIT_* env)")
	flag.StringVar(&opts.jobsPath, "jobs", "-", "job file, .yaml or .json; - reads YAML from stdin")
	flag.StringVar(&opts.outPath, "out", "", "write frames to this file (default: discard)")
	flag.BoolVar(&opts.verify, "verify", false, "decode every frame and compare it with the traced path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		config.Exitf("voxtrace: %v", err)
	}
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) error {
	app, cleanup, err := injector.InitializeApp(injector.ConfigPath(opts.configPath))
	if err != nil {
		return err
	}
	defer cleanup()

	specs, err := readJobs(opts.jobsPath, stdin)
	if err != nil {
		return err
	}
	jobs, err := trace.JobsFromSpecs(specs)
	if err != nil {
		return err
	}

	var voxels, frameBytes atomic.Int64
	sub, err := app.Events.Subscribe(trace.EventJobTraced, func(e bus.Event) error {
		res := e.Data().(trace.Result)
		voxels.Add(int64(len(res.Voxels)))
		frameBytes.Add(int64(len(res.Frame)))
		return nil
	})
	if err != nil {
		return err
	}
	defer app.Events.Unsubscribe(sub)

	results, err := app.Runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(stdout, "%s\terror\t%v\n", res.JobID, res.Err)
			continue
		}
		hit := "-"
		if res.Hit != nil {
			hit = res.Hit.Block.String()
		}
		fmt.Fprintf(stdout, "%s\t%d voxels\thit=%s\tdigest=%016x\n", res.JobID, len(res.Voxels), hit, res.Digest)

		if opts.verify {
			if err = trace.Verify(res); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
		}
	}

	fmt.Fprintf(stdout, "traced %d jobs: %d voxels, %d frame bytes\n", len(jobs)-failed, voxels.Load(), frameBytes.Load())

	if opts.outPath != "" {
		if err = writeFrames(opts.outPath, results); err != nil {
			return err
		}
		app.Logger.Info("frames written", log.String("path", opts.outPath))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
	}
	return nil
}

func readJobs(path string, stdin io.Reader) ([]config.JobSpec, error) {
	if path == "-" {
		return config.LoadJobs(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs: %w", err)
	}
	defer f.Close()

	if filepath.Ext(path) == ".json" {
		return config.LoadJobsJSON(f)
	}
	return config.LoadJobs(f)
}

func writeFrames(path string, results []trace.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if _, err = trace.WriteFrames(f, results); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
