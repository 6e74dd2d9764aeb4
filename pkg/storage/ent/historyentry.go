// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/historyentry"
)

// HistoryEntry is the model entity for the HistoryEntry schema.
type HistoryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID int `json:"article_id,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HistoryEntryQuery when eager-loading is set.
	Edges        HistoryEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HistoryEntryEdges holds the relations/edges for other nodes in the graph.
type HistoryEntryEdges struct {
	// Article holds the value of the article edge.
	Article *Article `json:"article,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticleOrErr returns the Article value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HistoryEntryEdges) ArticleOrErr() (*Article, error) {
	if e.Article != nil {
		return e.Article, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "article"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HistoryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case historyentry.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case historyentry.FieldID, historyentry.FieldArticleID:
			values[i] = new(sql.NullInt64)
		case historyentry.FieldAddedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HistoryEntry fields.
func (_m *HistoryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case historyentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case historyentry.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = int(value.Int64)
			}
		case historyentry.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case historyentry.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HistoryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *HistoryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticle queries the "article" edge of the HistoryEntry entity.
func (_m *HistoryEntry) QueryArticle() *ArticleQuery {
	return NewHistoryEntryClient(_m.config).QueryArticle(_m)
}

// Update returns a builder for updating this HistoryEntry.
// Note that you need to call HistoryEntry.Unwrap() before calling this method if this HistoryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HistoryEntry) Update() *HistoryEntryUpdateOne {
	return NewHistoryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HistoryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HistoryEntry) Unwrap() *HistoryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HistoryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HistoryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("HistoryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HistoryEntries is a parsable slice of HistoryEntry.
type HistoryEntries []*HistoryEntry
