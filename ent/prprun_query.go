// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loom-agents/loom/ent/evidencerecord"
	"github.com/loom-agents/loom/ent/predicate"
	"github.com/loom-agents/loom/ent/prprun"
)

// PRPRunQuery is the builder for querying PRPRun entities.
type PRPRunQuery struct {
	config
	ctx          *QueryContext
	order        []prprun.OrderOption
	inters       []Interceptor
	predicates   []predicate.PRPRun
	withEvidence *EvidenceRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PRPRunQuery builder.
func (_q *PRPRunQuery) Where(ps ...predicate.PRPRun) *PRPRunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PRPRunQuery) Limit(limit int) *PRPRunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PRPRunQuery) Offset(offset int) *PRPRunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PRPRunQuery) Unique(unique bool) *PRPRunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PRPRunQuery) Order(o ...prprun.OrderOption) *PRPRunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvidence chains the current query on the "evidence" edge.
func (_q *PRPRunQuery) QueryEvidence() *EvidenceRecordQuery {
	query := (&EvidenceRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(prprun.Table, prprun.FieldID, selector),
			sqlgraph.To(evidencerecord.Table, evidencerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, prprun.EvidenceTable, prprun.EvidenceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PRPRun entity from the query.
// Returns a *NotFoundError when no PRPRun was found.
func (_q *PRPRunQuery) First(ctx context.Context) (*PRPRun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{prprun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PRPRunQuery) FirstX(ctx context.Context) *PRPRun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PRPRun ID from the query.
// Returns a *NotFoundError when no PRPRun ID was found.
func (_q *PRPRunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{prprun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PRPRunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PRPRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PRPRun entity is found.
// Returns a *NotFoundError when no PRPRun entities are found.
func (_q *PRPRunQuery) Only(ctx context.Context) (*PRPRun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{prprun.Label}
	default:
		return nil, &NotSingularError{prprun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PRPRunQuery) OnlyX(ctx context.Context) *PRPRun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PRPRun ID in the query.
// Returns a *NotSingularError when more than one PRPRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PRPRunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{prprun.Label}
	default:
		err = &NotSingularError{prprun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PRPRunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PRPRuns.
func (_q *PRPRunQuery) All(ctx context.Context) ([]*PRPRun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PRPRun, *PRPRunQuery]()
	return withInterceptors[[]*PRPRun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PRPRunQuery) AllX(ctx context.Context) []*PRPRun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PRPRun IDs.
func (_q *PRPRunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(prprun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PRPRunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PRPRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PRPRunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PRPRunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PRPRunQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PRPRunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PRPRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PRPRunQuery) Clone() *PRPRunQuery {
	if _q == nil {
		return nil
	}
	return &PRPRunQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]prprun.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.PRPRun{}, _q.predicates...),
		withEvidence: _q.withEvidence.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvidence tells the query-builder to eager-load the nodes that are connected to
// the "evidence" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PRPRunQuery) WithEvidence(opts ...func(*EvidenceRecordQuery)) *PRPRunQuery {
	query := (&EvidenceRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvidence = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Blueprint string `json:"blueprint,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PRPRun.Query().
//		GroupBy(prprun.FieldBlueprint).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PRPRunQuery) GroupBy(field string, fields ...string) *PRPRunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PRPRunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = prprun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Blueprint string `json:"blueprint,omitempty"`
//	}
//
//	client.PRPRun.Query().
//		Select(prprun.FieldBlueprint).
//		Scan(ctx, &v)
func (_q *PRPRunQuery) Select(fields ...string) *PRPRunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PRPRunSelect{PRPRunQuery: _q}
	sbuild.label = prprun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PRPRunSelect configured with the given aggregations.
func (_q *PRPRunQuery) Aggregate(fns ...AggregateFunc) *PRPRunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PRPRunQuery) prepareQuery(ctx context.Context) error {
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
		if !prprun.ValidColumn(f) {
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

func (_q *PRPRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PRPRun, error) {
	var (
		nodes       = []*PRPRun{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEvidence != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PRPRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PRPRun{config: _q.config}
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
	if query := _q.withEvidence; query != nil {
		if err := _q.loadEvidence(ctx, query, nodes,
			func(n *PRPRun) { n.Edges.Evidence = []*EvidenceRecord{} },
			func(n *PRPRun, e *EvidenceRecord) { n.Edges.Evidence = append(n.Edges.Evidence, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PRPRunQuery) loadEvidence(ctx context.Context, query *EvidenceRecordQuery, nodes []*PRPRun, init func(*PRPRun), assign func(*PRPRun, *EvidenceRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PRPRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evidencerecord.FieldRunID)
	}
	query.Where(predicate.EvidenceRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(prprun.EvidenceColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PRPRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PRPRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(prprun.Table, prprun.Columns, sqlgraph.NewFieldSpec(prprun.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prprun.FieldID)
		for i := range fields {
			if fields[i] != prprun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *PRPRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(prprun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = prprun.Columns
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

// PRPRunGroupBy is the group-by builder for PRPRun entities.
type PRPRunGroupBy struct {
	selector
	build *PRPRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PRPRunGroupBy) Aggregate(fns ...AggregateFunc) *PRPRunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PRPRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PRPRunQuery, *PRPRunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PRPRunGroupBy) sqlScan(ctx context.Context, root *PRPRunQuery, v any) error {
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

// PRPRunSelect is the builder for selecting fields of PRPRun entities.
type PRPRunSelect struct {
	*PRPRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PRPRunSelect) Aggregate(fns ...AggregateFunc) *PRPRunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PRPRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PRPRunQuery, *PRPRunSelect](ctx, _s.PRPRunQuery, _s, _s.inters, v)
}

func (_s *PRPRunSelect) sqlScan(ctx context.Context, root *PRPRunQuery, v any) error {
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
