package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InsertBuilder writes a single-row INSERT built from a tagged struct, with
// optional upsert and RETURNING clauses.
type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
	conflict  []string
	onUpdate  []string
	returning []string
	err       error
}

// InsertModel reads the db tags of model. Fields tagged with the "auto"
// option (for example `db:"id,auto"`) are generated by the database and
// skipped. Tag errors surface from ToSQL.
func InsertModel(table string, model any) *InsertBuilder {
	b := &InsertBuilder{table: table}
	b.columns, b.values, b.err = modelColumns(model)
	return b
}

// OnConflict names the unique key that turns the insert into an upsert.
// Without Accumulate or SetOnConflict the conflicting row is left alone.
func (b *InsertBuilder) OnConflict(columns ...string) *InsertBuilder {
	b.conflict = append([]string(nil), columns...)
	return b
}

// Accumulate adds the inserted value of each column onto the stored one
// when the row already exists.
func (b *InsertBuilder) Accumulate(columns ...string) *InsertBuilder {
	for _, col := range columns {
		b.onUpdate = append(b.onUpdate, fmt.Sprintf("%s = %s.%s + EXCLUDED.%s", col, b.table, col, col))
	}
	return b
}

// SetOnConflict assigns raw SQL to column when the row already exists.
func (b *InsertBuilder) SetOnConflict(column, sql string) *InsertBuilder {
	b.onUpdate = append(b.onUpdate, column+" = "+sql)
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append(b.returning, columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("insert table is required")
	}
	if len(b.onUpdate) > 0 && len(b.conflict) == 0 {
		return "", nil, errors.New("upsert requires a conflict target")
	}

	w := &writer{}
	w.text("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.text(", ")
		}
		w.bind(v)
	}
	w.text(")")
	if len(b.conflict) > 0 {
		w.text(" ON CONFLICT (", strings.Join(b.conflict, ", "), ")")
		if len(b.onUpdate) == 0 {
			w.text(" DO NOTHING")
		} else {
			w.list(" DO UPDATE SET ", b.onUpdate)
		}
	}
	w.list(" RETURNING ", b.returning)

	query, args := w.result()
	return query, args, nil
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, errors.New("insert model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("insert model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	var cols []string
	var vals []any
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" || hasTagOption(opts, "auto") {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, value.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("insert model %s has no db columns", typ.Name())
	}
	return cols, vals, nil
}

func hasTagOption(opts, want string) bool {
	for _, opt := range strings.Split(opts, ",") {
		if strings.TrimSpace(opt) == want {
			return true
		}
	}
	return false
}
