// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perusehq/peruse/pkg/storage/ent/article"
	"github.com/perusehq/peruse/pkg/storage/ent/articlemetadata"
	"github.com/perusehq/peruse/pkg/storage/ent/predicate"
	"github.com/perusehq/peruse/pkg/storage/ent/source"
)

// ArticleMetadataQuery is the builder for querying ArticleMetadata entities.
type ArticleMetadataQuery struct {
	config
	ctx         *QueryContext
	order       []articlemetadata.OrderOption
	inters      []Interceptor
	predicates  []predicate.ArticleMetadata
	withArticle *ArticleQuery
	withSource  *SourceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ArticleMetadataQuery builder.
func (_q *ArticleMetadataQuery) Where(ps ...predicate.ArticleMetadata) *ArticleMetadataQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ArticleMetadataQuery) Limit(limit int) *ArticleMetadataQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ArticleMetadataQuery) Offset(offset int) *ArticleMetadataQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ArticleMetadataQuery) Unique(unique bool) *ArticleMetadataQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ArticleMetadataQuery) Order(o ...articlemetadata.OrderOption) *ArticleMetadataQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryArticle chains the current query on the "article" edge.
func (_q *ArticleMetadataQuery) QueryArticle() *ArticleQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(articlemetadata.Table, articlemetadata.FieldID, selector),
			sqlgraph.To(article.Table, article.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, articlemetadata.ArticleTable, articlemetadata.ArticleColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySource chains the current query on the "source" edge.
func (_q *ArticleMetadataQuery) QuerySource() *SourceQuery {
	query := (&SourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(articlemetadata.Table, articlemetadata.FieldID, selector),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, articlemetadata.SourceTable, articlemetadata.SourceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ArticleMetadata entity from the query.
// Returns a *NotFoundError when no ArticleMetadata was found.
func (_q *ArticleMetadataQuery) First(ctx context.Context) (*ArticleMetadata, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{articlemetadata.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ArticleMetadataQuery) FirstX(ctx context.Context) *ArticleMetadata {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ArticleMetadata ID from the query.
// Returns a *NotFoundError when no ArticleMetadata ID was found.
func (_q *ArticleMetadataQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{articlemetadata.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ArticleMetadataQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ArticleMetadata entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ArticleMetadata entity is found.
// Returns a *NotFoundError when no ArticleMetadata entities are found.
func (_q *ArticleMetadataQuery) Only(ctx context.Context) (*ArticleMetadata, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{articlemetadata.Label}
	default:
		return nil, &NotSingularError{articlemetadata.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ArticleMetadataQuery) OnlyX(ctx context.Context) *ArticleMetadata {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ArticleMetadata ID in the query.
// Returns a *NotSingularError when more than one ArticleMetadata ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ArticleMetadataQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{articlemetadata.Label}
	default:
		err = &NotSingularError{articlemetadata.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ArticleMetadataQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ArticleMetadataSlice.
func (_q *ArticleMetadataQuery) All(ctx context.Context) ([]*ArticleMetadata, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ArticleMetadata, *ArticleMetadataQuery]()
	return withInterceptors[[]*ArticleMetadata](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ArticleMetadataQuery) AllX(ctx context.Context) []*ArticleMetadata {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ArticleMetadata IDs.
func (_q *ArticleMetadataQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(articlemetadata.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ArticleMetadataQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ArticleMetadataQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ArticleMetadataQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ArticleMetadataQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ArticleMetadataQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ArticleMetadataQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ArticleMetadataQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ArticleMetadataQuery) Clone() *ArticleMetadataQuery {
	if _q == nil {
		return nil
	}
	return &ArticleMetadataQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]articlemetadata.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ArticleMetadata{}, _q.predicates...),
		withArticle: _q.withArticle.Clone(),
		withSource:  _q.withSource.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithArticle tells the query-builder to eager-load the nodes that are connected to
// the "article" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArticleMetadataQuery) WithArticle(opts ...func(*ArticleQuery)) *ArticleMetadataQuery {
	query := (&ArticleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArticle = query
	return _q
}

// WithSource tells the query-builder to eager-load the nodes that are connected to
// the "source" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ArticleMetadataQuery) WithSource(opts ...func(*SourceQuery)) *ArticleMetadataQuery {
	query := (&SourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSource = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ArticleID int `json:"article_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ArticleMetadata.Query().
//		GroupBy(articlemetadata.FieldArticleID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ArticleMetadataQuery) GroupBy(field string, fields ...string) *ArticleMetadataGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ArticleMetadataGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = articlemetadata.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ArticleID int `json:"article_id,omitempty"`
//	}
//
//	client.ArticleMetadata.Query().
//		Select(articlemetadata.FieldArticleID).
//		Scan(ctx, &v)
func (_q *ArticleMetadataQuery) Select(fields ...string) *ArticleMetadataSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ArticleMetadataSelect{ArticleMetadataQuery: _q}
	sbuild.label = articlemetadata.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ArticleMetadataSelect configured with the given aggregations.
func (_q *ArticleMetadataQuery) Aggregate(fns ...AggregateFunc) *ArticleMetadataSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ArticleMetadataQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !articlemetadata.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ArticleMetadataQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ArticleMetadata, error) {
	var (
		nodes       = []*ArticleMetadata{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withArticle != nil,
			_q.withSource != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ArticleMetadata).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ArticleMetadata{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withArticle; query != nil {
		if err := _q.loadArticle(ctx, query, nodes, nil,
			func(n *ArticleMetadata, e *Article) { n.Edges.Article = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSource; query != nil {
		if err := _q.loadSource(ctx, query, nodes, nil,
			func(n *ArticleMetadata, e *Source) { n.Edges.Source = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ArticleMetadataQuery) loadArticle(ctx context.Context, query *ArticleQuery, nodes []*ArticleMetadata, init func(*ArticleMetadata), assign func(*ArticleMetadata, *Article)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ArticleMetadata)
	for i := range nodes {
		fk := nodes[i].ArticleID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(article.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "article_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ArticleMetadataQuery) loadSource(ctx context.Context, query *SourceQuery, nodes []*ArticleMetadata, init func(*ArticleMetadata), assign func(*ArticleMetadata, *Source)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ArticleMetadata)
	for i := range nodes {
		fk := nodes[i].SourceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(source.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "source_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ArticleMetadataQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ArticleMetadataQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(articlemetadata.Table, articlemetadata.Columns, sqlgraph.NewFieldSpec(articlemetadata.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, articlemetadata.FieldID)
		for i := range fields {
			if fields[i] != articlemetadata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withArticle != nil {
			_spec.Node.AddColumnOnce(articlemetadata.FieldArticleID)
		}
		if _q.withSource != nil {
			_spec.Node.AddColumnOnce(articlemetadata.FieldSourceID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ArticleMetadataQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(articlemetadata.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = articlemetadata.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ArticleMetadataGroupBy is the group-by builder for ArticleMetadata entities.
type ArticleMetadataGroupBy struct {
	selector
	build *ArticleMetadataQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ArticleMetadataGroupBy) Aggregate(fns ...AggregateFunc) *ArticleMetadataGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ArticleMetadataGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArticleMetadataQuery, *ArticleMetadataGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ArticleMetadataGroupBy) sqlScan(ctx context.Context, root *ArticleMetadataQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ArticleMetadataSelect is the builder for selecting fields of ArticleMetadata entities.
type ArticleMetadataSelect struct {
	*ArticleMetadataQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ArticleMetadataSelect) Aggregate(fns ...AggregateFunc) *ArticleMetadataSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ArticleMetadataSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ArticleMetadataQuery, *ArticleMetadataSelect](ctx, _s.ArticleMetadataQuery, _s, _s.inters, v)
}

func (_s *ArticleMetadataSelect) sqlScan(ctx context.Context, root *ArticleMetadataQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
