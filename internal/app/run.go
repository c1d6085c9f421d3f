package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/specialistvlad/nagorder/internal/config"
	"github.com/specialistvlad/nagorder/internal/ctxlog"
	"github.com/specialistvlad/nagorder/internal/dot"
	"github.com/specialistvlad/nagorder/internal/lineariser"
	"github.com/specialistvlad/nagorder/internal/metrics"
	"github.com/specialistvlad/nagorder/internal/nag"
	"github.com/specialistvlad/nagorder/internal/recordfile"
)

// Run loads the graph, orders it and writes every requested output.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	model, err := a.load(ctx)
	if err != nil {
		return err
	}

	g := model.Graph()
	if err := g.Verify(); err != nil {
		return fmt.Errorf("invalid graph: %w", err)
	}
	logger.Info("Graph loaded.", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	rec := metrics.NewRecorder()
	rec.ObserveGraph(g)

	start := time.Now()
	sorted, err := g.Components(model.OrderEarly())
	if err != nil {
		return fmt.Errorf("ordering graph: %w", err)
	}
	rec.ObserveComponents(sorted, time.Since(start))
	logger.Info("Components ordered.", "components", len(sorted), "took", time.Since(start))

	a.printComponents(sorted)

	if a.config.Plan {
		l := lineariser.New(g, lineariser.Options{
			OrderEarly: model.OrderEarly(),
			IsChange:   model.IsChange,
			Uninstall:  model.Uninstall,
		})
		steps, err := l.Linearise(ctx, sorted)
		if err != nil {
			return fmt.Errorf("building plan: %w", err)
		}
		rec.ObservePlan(len(steps))
		a.printPlan(steps)
	}

	if err := a.writeOutputs(ctx, g, sorted, rec); err != nil {
		return err
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) load(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	if a.config.ResumePath != "" {
		logger.Debug("Resuming from saved record.", "path", a.config.ResumePath)
		g, err := recordfile.Load(ctx, a.config.ResumePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resume: %w", err)
		}
		return config.FromGraph(g), nil
	}

	logger.Debug("Loading graph description.", "path", a.config.GraphPath)
	model, err := a.loader.Load(ctx, a.config.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	return model, nil
}

func (a *App) writeOutputs(ctx context.Context, g *nag.Graph, sorted nag.SortedStronglyConnectedComponents, rec *metrics.Recorder) error {
	logger := ctxlog.FromContext(ctx)

	if p := a.config.SavePath; p != "" {
		if err := recordfile.Save(ctx, p, g); err != nil {
			return fmt.Errorf("failed to save graph: %w", err)
		}
		logger.Info("Graph saved.", "path", p)
	}

	if p := a.config.DotPath; p != "" {
		if err := writeDot(p, g, sorted); err != nil {
			return err
		}
		logger.Info("DOT graph written.", "path", p)
	}

	if p := a.config.MetricsFile; p != "" {
		if err := rec.WriteTextfile(p); err != nil {
			return err
		}
		logger.Info("Metrics written.", "path", p)
	}
	return nil
}

func writeDot(path string, g *nag.Graph, sorted nag.SortedStronglyConnectedComponents) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating DOT file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing DOT file: %w", cerr)
		}
	}()
	if err := dot.Write(f, g, sorted); err != nil {
		return fmt.Errorf("writing DOT file: %w", err)
	}
	return nil
}

func (a *App) printComponents(sorted nag.SortedStronglyConnectedComponents) {
	fmt.Fprintln(a.outW, "Order:")
	for i, c := range sorted {
		if !c.IsCycle() {
			fmt.Fprintf(a.outW, "%4d. %s\n", i+1, c.Nodes[0])
			continue
		}
		fmt.Fprintf(a.outW, "%4d. %s (cycle)\n", i+1, nag.FormatNodes(c.Nodes))
	}
}

func (a *App) printPlan(steps []lineariser.Step) {
	fmt.Fprintln(a.outW, "Plan:")
	for i, s := range steps {
		fmt.Fprintf(a.outW, "%4d. %s\n", i+1, s)
	}
}
