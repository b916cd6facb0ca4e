package script

import (
	"context"
	"fmt"

	"github.com/conneroisu/slink/internal/errs"
	"github.com/conneroisu/slink/internal/list"
	"github.com/conneroisu/slink/internal/logging"
)

// Outcome messages shared by the runner and the demo command.
const (
	OutcomeOK          = "ok"
	OutcomeOutOfBounds = "position out of bounds"
	OutcomeNotFound    = "value not found"
)

// StepResult records what one step did to the list.
type StepResult struct {
	Index   int
	Op      string
	Detail  string
	Outcome string
	List    string
	Err     error
}

// RunResult is the full outcome of a script run.
type RunResult struct {
	Script *Script
	Final  *list.List
	Steps  []StepResult
	Errors []error
}

// Runner executes scripts against the list engine.
type Runner struct {
	log logging.Logger
}

// NewRunner creates a runner logging through log.
func NewRunner(log logging.Logger) *Runner {
	return &Runner{log: log.WithComponent("script")}
}

// Run executes every step of the script in order. Step failures are
// recorded in the result and collected, never fatal; the returned
// error is reserved for a canceled context.
func (r *Runner) Run(ctx context.Context, s *Script) (*RunResult, error) {
	l := list.New(s.Initial...)
	collector := errs.NewCollector()

	result := &RunResult{
		Script: s,
		Final:  l,
		Steps:  make([]StepResult, 0, len(s.Steps)),
	}

	r.log.Info(ctx, "Running script", "name", s.Name, "steps", len(s.Steps), "initial", s.Initial)

	for i, step := range s.Steps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		res := r.runStep(ctx, l, i, step)
		if res.Err != nil {
			collector.Add(res.Err)
		}
		result.Steps = append(result.Steps, res)
	}

	result.Errors = collector.All()
	r.log.Info(ctx, "Script finished",
		"name", s.Name, "length", l.Len(), "failed_steps", collector.Len())

	return result, nil
}

func (r *Runner) runStep(ctx context.Context, l *list.List, index int, step Step) StepResult {
	res := StepResult{
		Index:   index,
		Op:      step.Op,
		Outcome: OutcomeOK,
	}

	switch step.Op {
	case OpInsertHead:
		l.InsertAtHead(step.Value)
		res.Detail = fmt.Sprintf("insert %d at head", step.Value)

	case OpInsertTail:
		l.InsertAtTail(step.Value)
		res.Detail = fmt.Sprintf("insert %d at tail", step.Value)

	case OpInsertAfter:
		res.Detail = fmt.Sprintf("insert %d after %d", step.Value, step.After)
		if err := l.InsertAfter(l.Find(step.After), step.Value); err != nil {
			res.Err = err
			res.Outcome = OutcomeNotFound
		}

	case OpInsertAt:
		res.Detail = fmt.Sprintf("insert %d at position %d", step.Value, step.Position)
		if err := l.InsertAt(step.Position, step.Value); err != nil {
			res.Err = err
			res.Outcome = OutcomeOutOfBounds
		}

	case OpInsertSorted:
		l.InsertSorted(step.Value)
		res.Detail = fmt.Sprintf("insert %d sorted", step.Value)

	case OpRemoveValue:
		res.Detail = fmt.Sprintf("remove value %d", step.Value)
		if !l.RemoveValue(step.Value) {
			res.Err = errs.ValueNotFound(step.Value).WithOp(OpRemoveValue)
			res.Outcome = OutcomeNotFound
		}

	case OpRemoveAt:
		res.Detail = fmt.Sprintf("remove node at position %d", step.Position)
		target := nodeAt(l, step.Position)
		if target == nil {
			res.Err = errs.OutOfBounds(step.Position).WithOp(OpRemoveAt)
			res.Outcome = OutcomeOutOfBounds
		} else {
			l.Remove(target)
		}

	case OpFind:
		res.Detail = fmt.Sprintf("find value %d", step.Value)
		if l.Find(step.Value) == nil {
			res.Outcome = OutcomeNotFound
		}

	case OpFirstCommon:
		res.Detail = fmt.Sprintf("first common value with %v", step.Values)
		if node := l.FirstCommon(list.New(step.Values...)); node != nil {
			res.Outcome = fmt.Sprintf("common value %d", node.Value())
		} else {
			res.Outcome = OutcomeNotFound
		}

	case OpLength:
		res.Detail = "length"
		res.Outcome = fmt.Sprintf("length %d", l.Len())

	case OpPrint:
		res.Detail = "print"
	}

	res.List = l.String()

	if res.Err != nil {
		r.log.Warn(ctx, res.Err, "Step failed", "index", index, "op", step.Op)
	} else {
		r.log.Debug(ctx, "Step completed", "index", index, "op", step.Op, "list", res.List)
	}

	return res
}

// nodeAt walks to the node at a zero-based position, nil when the
// position is negative or past the tail.
func nodeAt(l *list.List, position int) *list.Node {
	if position < 0 {
		return nil
	}

	cur := l.Head()
	for i := 0; i < position && cur != nil; i++ {
		cur = cur.Next()
	}

	return cur
}
