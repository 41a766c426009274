package dsv

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Result is the table produced by Parse.
//
// Lines share the arity of the first line unless asymmetry is allowed.
// Both slices are non-nil.
type Result struct {
	ColumnNames []string   `json:"columnNames" yaml:"columnNames"`
	Lines       [][]string `json:"lines" yaml:"lines"`
}

// Len returns the number of lines.
func (r *Result) Len() int {
	return len(r.Lines)
}

// Column returns the values of the named column, one per line.
// Lines too short to hold the column contribute an empty string.
func (r *Result) Column(name string) ([]string, bool) {
	index := lo.IndexOf(r.ColumnNames, name)
	if index < 0 {
		return nil, false
	}

	return lo.Map(r.Lines, func(line []string, _ int) string {
		if index < len(line) {
			return line[index]
		}
		return ""
	}), true
}

// Records returns one map per line keyed by column name.
// When column names repeat, the rightmost value wins.
func (r *Result) Records() []map[string]string {
	return lo.Map(r.Lines, func(line []string, _ int) map[string]string {
		record := make(map[string]string, len(line))
		for i, value := range line {
			record[r.columnName(i)] = value
		}
		return record
	})
}

// Node converts the result to a Shape AST.
//
// Returns an *ast.ArrayDataNode whose first element is the column-name row,
// followed by one *ast.ArrayDataNode per line. Every cell is an
// *ast.LiteralNode holding a string.
//
// Example:
//
//	result, _ := dsv.Parse("a,b\r\nc,d")
//	rows := result.Node().(*ast.ArrayDataNode).Elements()
//	// rows[0] holds Column_0, Column_1
//	// rows[1] holds a, b
func (r *Result) Node() ast.SchemaNode {
	rows := make([]ast.SchemaNode, 0, len(r.Lines)+1)
	rows = append(rows, literalRow(r.ColumnNames))
	for _, line := range r.Lines {
		rows = append(rows, literalRow(line))
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}

func (r *Result) columnName(index int) string {
	if index < len(r.ColumnNames) {
		return r.ColumnNames[index]
	}
	return fmt.Sprintf("Column_%d", index)
}

func literalRow(values []string) *ast.ArrayDataNode {
	cells := make([]ast.SchemaNode, 0, len(values))
	for _, v := range values {
		cells = append(cells, ast.NewLiteralNode(v, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(cells, ast.ZeroPosition())
}
