// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/predicate"
)

// JobStepProgressUpdate is the builder for updating JobStepProgress entities.
type JobStepProgressUpdate struct {
	config
	hooks    []Hook
	mutation *JobStepProgressMutation
}

// Where appends a list predicates to the JobStepProgressUpdate builder.
func (_u *JobStepProgressUpdate) Where(ps ...predicate.JobStepProgress) *JobStepProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobStepProgressUpdate) SetStatus(v jobstepprogress.Status) *JobStepProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobStepProgressUpdate) SetNillableStatus(v *jobstepprogress.Status) *JobStepProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobStepProgressUpdate) SetOutput(v map[string]interface{}) *JobStepProgressUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobStepProgressUpdate) ClearOutput() *JobStepProgressUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobStepProgressUpdate) SetLastError(v string) *JobStepProgressUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobStepProgressUpdate) SetNillableLastError(v *string) *JobStepProgressUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobStepProgressUpdate) ClearLastError() *JobStepProgressUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobStepProgressUpdate) SetStartedAt(v time.Time) *JobStepProgressUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobStepProgressUpdate) SetNillableStartedAt(v *time.Time) *JobStepProgressUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobStepProgressUpdate) ClearStartedAt() *JobStepProgressUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobStepProgressUpdate) SetCompletedAt(v time.Time) *JobStepProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobStepProgressUpdate) SetNillableCompletedAt(v *time.Time) *JobStepProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobStepProgressUpdate) ClearCompletedAt() *JobStepProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobStepProgressUpdate) SetUpdatedAt(v time.Time) *JobStepProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobStepProgressMutation object of the builder.
func (_u *JobStepProgressUpdate) Mutation() *JobStepProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobStepProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobStepProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobStepProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobStepProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobStepProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobstepprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobStepProgressUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobstepprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStepProgress.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStepProgress.job"`)
	}
	return nil
}

func (_u *JobStepProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstepprogress.Table, jobstepprogress.Columns, sqlgraph.NewFieldSpec(jobstepprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobstepprogress.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(jobstepprogress.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(jobstepprogress.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(jobstepprogress.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(jobstepprogress.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(jobstepprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(jobstepprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobstepprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobstepprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobstepprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstepprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobStepProgressUpdateOne is the builder for updating a single JobStepProgress entity.
type JobStepProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobStepProgressMutation
}

// SetStatus sets the "status" field.
func (_u *JobStepProgressUpdateOne) SetStatus(v jobstepprogress.Status) *JobStepProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobStepProgressUpdateOne) SetNillableStatus(v *jobstepprogress.Status) *JobStepProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *JobStepProgressUpdateOne) SetOutput(v map[string]interface{}) *JobStepProgressUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *JobStepProgressUpdateOne) ClearOutput() *JobStepProgressUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *JobStepProgressUpdateOne) SetLastError(v string) *JobStepProgressUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *JobStepProgressUpdateOne) SetNillableLastError(v *string) *JobStepProgressUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *JobStepProgressUpdateOne) ClearLastError() *JobStepProgressUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobStepProgressUpdateOne) SetStartedAt(v time.Time) *JobStepProgressUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobStepProgressUpdateOne) SetNillableStartedAt(v *time.Time) *JobStepProgressUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobStepProgressUpdateOne) ClearStartedAt() *JobStepProgressUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobStepProgressUpdateOne) SetCompletedAt(v time.Time) *JobStepProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobStepProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *JobStepProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobStepProgressUpdateOne) ClearCompletedAt() *JobStepProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobStepProgressUpdateOne) SetUpdatedAt(v time.Time) *JobStepProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobStepProgressMutation object of the builder.
func (_u *JobStepProgressUpdateOne) Mutation() *JobStepProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobStepProgressUpdate builder.
func (_u *JobStepProgressUpdateOne) Where(ps ...predicate.JobStepProgress) *JobStepProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobStepProgressUpdateOne) Select(field string, fields ...string) *JobStepProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobStepProgress entity.
func (_u *JobStepProgressUpdateOne) Save(ctx context.Context) (*JobStepProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobStepProgressUpdateOne) SaveX(ctx context.Context) *JobStepProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobStepProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobStepProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobStepProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobstepprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobStepProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobstepprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStepProgress.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStepProgress.job"`)
	}
	return nil
}

func (_u *JobStepProgressUpdateOne) sqlSave(ctx context.Context) (_node *JobStepProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstepprogress.Table, jobstepprogress.Columns, sqlgraph.NewFieldSpec(jobstepprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobStepProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobstepprogress.FieldID)
		for _, f := range fields {
			if !jobstepprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobstepprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobstepprogress.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(jobstepprogress.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(jobstepprogress.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(jobstepprogress.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(jobstepprogress.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(jobstepprogress.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(jobstepprogress.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobstepprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobstepprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobstepprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &JobStepProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstepprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
