package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE or HAVING clause.
type Condition interface {
	render(w *writer)
}

// writer accumulates SQL text and numbers positional arguments as they are
// appended, so conditions from different clauses share one $n sequence.
type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) text(parts ...string) {
	for _, p := range parts {
		w.sql.WriteString(p)
	}
}

func (w *writer) bind(value any) {
	w.args = append(w.args, value)
	w.sql.WriteString("$")
	w.sql.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes raw SQL, binding one argument per '?'. Extra question marks
// are kept literally.
func (w *writer) expr(sql string, args []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sql.WriteByte(sql[i])
	}
}

func (w *writer) conditions(keyword string, conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			w.text(keyword)
		} else {
			w.text(" AND ")
		}
		c.render(w)
	}
}

func (w *writer) list(keyword string, items []string) {
	if len(items) > 0 {
		w.text(keyword, strings.Join(items, ", "))
	}
}

func (w *writer) result() (string, []any) {
	return w.sql.String(), w.args
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(w *writer) {
	w.text(c.column, " = ")
	w.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

// In matches any of values. An empty set matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) render(w *writer) {
	if len(c.values) == 0 {
		w.text("1=0")
		return
	}
	w.text(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.text(", ")
		}
		w.bind(v)
	}
	w.text(")")
}

type isNullCondition string

// IsNull is mostly used for the deleted_at soft-delete filter.
func IsNull(column string) Condition {
	return isNullCondition(column)
}

func (c isNullCondition) render(w *writer) {
	w.text(string(c), " IS NULL")
}

type exprCondition struct {
	sql  string
	args []any
}

// Expr embeds raw SQL; each ? is replaced by the next positional placeholder.
func Expr(sql string, args ...any) Condition {
	return exprCondition{sql: sql, args: args}
}

func (c exprCondition) render(w *writer) {
	w.expr(c.sql, c.args)
}
