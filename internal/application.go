package internal

import (
	"context"
	"dirdiff/cmd/global"
	"dirdiff/internal/configuration"
	"dirdiff/internal/data"
	"dirdiff/internal/diff"
	"dirdiff/internal/logging"
	"dirdiff/internal/ui"
	"dirdiff/internal/util"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/oklog/run"
)

func RunApplication() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if configuration.CurrentConfig.Profiling.Enabled {
			g.Add(func() error {
				mux := http.NewServeMux()
				mux.HandleFunc("/debug/pprof/", pprof.Index)
				mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
				mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
				mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
				mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

				go func() {
					logging.Info("Starting profiling webserver...")
					profilingConfig := configuration.CurrentConfig.Profiling
					address := fmt.Sprintf("%s:%d", profilingConfig.Host, profilingConfig.Port)
					err := http.ListenAndServe(address, mux)
					logging.Error("Error running profiling webserver: %v", err)
				}()

				<-ctx.Done()
				logging.Info("Stopping profiling webserver...")
				return nil
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		if global.Watch {
			g.Add(func() error {
				return watchAndCompare(ctx)
			}, func(err error) {
				cancel()
			})
			g.Add(run.SignalHandler(ctx, os.Interrupt))
		} else {
			g.Add(func() error {
				_, err := Compare(configuration.CurrentConfig)
				return err
			}, func(err error) {
				cancel()
			})
		}
	}

	if err := g.Run(); err != nil {
		if _, ok := err.(run.SignalError); ok {
			os.Exit(0)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		os.Exit(0)
	}
}

// Compare runs a single comparison with the given configuration and renders
// the result. Only configuration and root-path errors are returned; per-file
// problems surface as warnings inside the report.
func Compare(config configuration.Configuration) (*data.DiffResult, error) {
	filter, err := diff.NewPathFilter(
		config.Filter.IgnoreDirs,
		config.Filter.IgnoreFiles,
		config.Filter.Extensions,
	)
	if err != nil {
		return nil, err
	}

	originalEntries, originalWarnings, err := diff.NewTreeWalker(config.Original, filter).Walk()
	if err != nil {
		return nil, err
	}
	modifiedEntries, modifiedWarnings, err := diff.NewTreeWalker(config.Modified, filter).Walk()
	if err != nil {
		return nil, err
	}

	engine := diff.NewLineDiffEngine(config.Output.ContextLines, config.Output.MaxDiffLines)
	aggregator := diff.NewAggregator(engine)
	result := aggregator.Aggregate(
		config.Original,
		config.Modified,
		originalEntries,
		modifiedEntries,
		append(originalWarnings, modifiedWarnings...),
	)

	ui.NewTerminalReport(result, configuration.GetFilePath(), config.Output.ShowContent).Print()

	if config.Output.Html {
		err = ui.WriteHtmlReport(result, config.Output.HtmlPath)
		if err != nil {
			return result, fmt.Errorf("unable to write HTML report: %w", err)
		}
		logging.Success("HTML Report: %s", config.Output.HtmlPath)
	}

	return result, nil
}

// watchAndCompare runs the comparison once and then again whenever something
// below either root changes, until the context is cancelled.
func watchAndCompare(ctx context.Context) error {
	config := configuration.CurrentConfig

	if _, err := Compare(config); err != nil {
		return err
	}

	trigger := make(chan string, 1)
	onChange := func(path string) {
		select {
		case trigger <- path:
		default:
		}
	}

	for _, root := range []string{config.Original, config.Modified} {
		watcher := util.NewFileWatcher(root)
		if err := watcher.WatchRecursive(onChange); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	for {
		select {
		case path := <-trigger:
			logging.Info("Change detected at %s, comparing again...", path)
			if _, err := Compare(config); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
