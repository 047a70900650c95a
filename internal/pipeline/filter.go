package pipeline

import (
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hienpham123/tabletify/internal/dataset"
	"github.com/hienpham123/tabletify/internal/errdef"
)

// Compiled filter expressions are cached by source text; the same filter
// is re-applied on every data change.
var exprCache sync.Map // expression string -> *vm.Program

// filterRows returns the raw record indices passing both the per-column
// substring filters and the optional expression. A compile error is
// returned so the host can surface it; a per-row eval error just excludes
// that row.
func filterRows(ds *dataset.Dataset, filters map[string]string, exprSrc string) ([]int, error) {
	program, err := compileFilter(exprSrc)
	if err != nil {
		return nil, err
	}

	idx := make([]int, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)
		if !matchFilters(rec, filters) {
			continue
		}
		if program != nil && !evalFilter(program, rec) {
			continue
		}
		idx = append(idx, i)
	}
	return idx, nil
}

func matchFilters(rec *dataset.Record, filters map[string]string) bool {
	for col, needle := range filters {
		needle = strings.TrimSpace(needle)
		if needle == "" {
			continue
		}
		value := rec.Value(col)
		if !strings.Contains(strings.ToLower(value), strings.ToLower(needle)) {
			return false
		}
	}
	return true
}

func compileFilter(src string) (*vm.Program, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	if cached, ok := exprCache.Load(src); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, errdef.Wrap(errdef.CodePipeline, err, "compile filter expression")
	}
	exprCache.Store(src, program)
	return program, nil
}

// evalFilter runs the expression against the record's field map. Anything
// other than a clean true excludes the row.
func evalFilter(program *vm.Program, rec *dataset.Record) bool {
	env := make(map[string]any, len(rec.Fields))
	for k, v := range rec.Fields {
		env[k] = v
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	ok, isBool := result.(bool)
	return isBool && ok
}
