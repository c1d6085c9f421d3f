package recordfile

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/nagorder/internal/ctxlog"
	"github.com/specialistvlad/nagorder/internal/nag"
)

// Save serialises g and writes it to path.
func Save(ctx context.Context, path string, g *nag.Graph) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, g.Serialise())
	if err != nil {
		return fmt.Errorf("encoding record for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Record saved.", "path", path, "format", f, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return nil
}

// Load reads path and rebuilds the graph it holds. Inconsistent records
// fail with an error matching nag.ErrMalformedRecord.
func Load(ctx context.Context, path string) (*nag.Graph, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	r, err := Decode(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := nag.Deserialise(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Record loaded.", "path", path, "format", f, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}
