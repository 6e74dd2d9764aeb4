// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// ArticleChunk is the predicate function for articlechunk builders.
type ArticleChunk func(*sql.Selector)

// ArticleMetadata is the predicate function for articlemetadata builders.
type ArticleMetadata func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// HistoryEntry is the predicate function for historyentry builders.
type HistoryEntry func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)
