package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/nagorder/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder fills omitted optional expressions with zero-width
// placeholders, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// boolExpr evaluates an optional boolean attribute, returning def when it
// was not written.
func boolExpr(ctx context.Context, expr hcl.Expression, attrName string, def bool) (bool, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return def, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, fmt.Errorf("invalid value for %s: %w", attrName, diags)
	}
	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", attrName, err)
	}
	if val.IsNull() {
		return def, nil
	}
	var out bool
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return false, fmt.Errorf("invalid value for %s: %w", attrName, err)
	}
	return out, nil
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
