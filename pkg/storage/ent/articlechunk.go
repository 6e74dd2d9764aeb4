// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlechunk"
)

// ArticleChunk is the model entity for the ArticleChunk schema.
type ArticleChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArticleID holds the value of the "article_id" field.
	ArticleID int `json:"article_id,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArticleChunkQuery when eager-loading is set.
	Edges        ArticleChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArticleChunkEdges holds the relations/edges for other nodes in the graph.
type ArticleChunkEdges struct {
	// Article holds the value of the article edge.
	Article *Article `json:"article,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArticleOrErr returns the Article value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ArticleChunkEdges) ArticleOrErr() (*Article, error) {
	if e.Article != nil {
		return e.Article, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: article.Label}
	}
	return nil, &NotLoadedError{edge: "article"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArticleChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case articlechunk.FieldEmbedding:
			values[i] = new([]byte)
		case articlechunk.FieldArticleID:
			values[i] = new(sql.NullInt64)
		case articlechunk.FieldID:
			values[i] = new(sql.NullString)
		case articlechunk.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArticleChunk fields.
func (_m *ArticleChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case articlechunk.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case articlechunk.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				_m.ArticleID = int(value.Int64)
			}
		case articlechunk.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case articlechunk.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ArticleChunk.
// This includes values selected through modifiers, order, etc.
func (_m *ArticleChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArticle queries the "article" edge of the ArticleChunk entity.
func (_m *ArticleChunk) QueryArticle() *ArticleQuery {
	return NewArticleChunkClient(_m.config).QueryArticle(_m)
}

// Update returns a builder for updating this ArticleChunk.
// Note that you need to call ArticleChunk.Unwrap() before calling this method if this ArticleChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArticleChunk) Update() *ArticleChunkUpdateOne {
	return NewArticleChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArticleChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArticleChunk) Unwrap() *ArticleChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArticleChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArticleChunk) String() string {
	var builder strings.Builder
	builder.WriteString("ArticleChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ArticleChunks is a parsable slice of ArticleChunk.
type ArticleChunks []*ArticleChunk
