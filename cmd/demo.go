package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/slink/internal/config"
	"github.com/conneroisu/slink/internal/errs"
	"github.com/conneroisu/slink/internal/list"
	"github.com/conneroisu/slink/internal/logging"
	"github.com/conneroisu/slink/internal/script"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:     "demo",
	Aliases: []string{"d"},
	Short:   "Run the built-in demo scenarios",
	Long: `Run the built-in demo scenarios against the list engine:

- Insert operations (head, tail, after a node, at a position)
- Insertion into a sorted list
- Deleting the node at every position, including past the tail
- Deleting by value (middle, head, tail, absent)
- First common value across two lists
- The name/age roster variant with delete-by-name

The seed sequences come from the demo section of the configuration.

Examples:
  slink demo                 # Table output
  slink demo --format plain  # One line per step`,
	RunE: runDemoCommand,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemoCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cfg.Logger()
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := script.NewRunner(logger)
	for _, s := range demoScripts(cfg) {
		result, err := runner.Run(ctx, s)
		if err != nil {
			return err
		}
		script.Render(out, result, cfg.Output.Format)
		fmt.Fprintln(out)
	}

	renderPositionalDeletes(out, cfg.Output.Format)
	fmt.Fprintln(out)
	renderRosterDemo(ctx, out, cfg, logger)

	return nil
}

// demoScripts builds the scripted scenarios from the config seeds.
func demoScripts(cfg *config.Config) []*script.Script {
	insertOps := &script.Script{
		Name: "insert operations",
		Steps: []script.Step{
			{Op: script.OpInsertHead, Value: 10},
			{Op: script.OpInsertHead, Value: 5},
			{Op: script.OpInsertTail, Value: 20},
			{Op: script.OpInsertTail, Value: 25},
			{Op: script.OpInsertAfter, After: 10, Value: 15},
			{Op: script.OpInsertAt, Position: 2, Value: 12},
			{Op: script.OpInsertAt, Position: 99, Value: 1},
			{Op: script.OpLength},
		},
	}

	sorted := &script.Script{Name: "sorted insertion"}
	for _, v := range cfg.Demo.SortedOrder {
		sorted.Steps = append(sorted.Steps, script.Step{Op: script.OpInsertSorted, Value: v})
	}
	sorted.Steps = append(sorted.Steps, script.Step{Op: script.OpPrint})

	values := cfg.Demo.Values
	byValue := &script.Script{
		Name:    "delete by value",
		Initial: values,
		Steps: []script.Step{
			{Op: script.OpRemoveValue, Value: values[len(values)/2]},
			{Op: script.OpRemoveValue, Value: values[0]},
			{Op: script.OpRemoveValue, Value: values[len(values)-1]},
			{Op: script.OpRemoveValue, Value: 999},
			{Op: script.OpPrint},
		},
	}

	common := &script.Script{
		Name:    "first common value",
		Initial: cfg.Demo.CommonA,
		Steps: []script.Step{
			{Op: script.OpFirstCommon, Values: cfg.Demo.CommonB},
			{Op: script.OpFind, Value: cfg.Demo.CommonA[0]},
		},
	}

	return []*script.Script{insertOps, sorted, byValue, common}
}

// renderPositionalDeletes deletes the node at each position of a fresh
// [0..4] list, one position past the tail included. This is the direct
// node-handle path through Remove, including the copy-from-successor
// splice and the tail predecessor scan.
func renderPositionalDeletes(out io.Writer, format string) {
	const count = 5

	steps := make([]script.StepResult, 0, count+1)

	for k := 0; k <= count; k++ {
		l := list.New()
		for i := 0; i < count; i++ {
			l.InsertAtTail(i)
		}

		var target *list.Node
		pos := 0
		for n := l.Head(); n != nil; n = n.Next() {
			if pos == k {
				target = n
				break
			}
			pos++
		}

		res := script.StepResult{
			Index:   k,
			Op:      "remove-node",
			Detail:  fmt.Sprintf("delete node at position %d", k),
			Outcome: script.OutcomeOK,
		}

		if target == nil {
			res.Outcome = script.OutcomeOutOfBounds
		} else {
			l.Remove(target)
		}
		res.List = l.String()

		steps = append(steps, res)
	}

	result := &script.RunResult{
		Script: &script.Script{Name: "delete node at each position"},
		Steps:  steps,
	}
	script.Render(out, result, format)
}

// renderRosterDemo exercises the record variant: build the roster from
// config, delete a middle name, the head name, and a missing name.
func renderRosterDemo(ctx context.Context, out io.Writer, cfg *config.Config, logger logging.Logger) {
	log := logger.WithComponent("demo")

	roster := list.NewRoster()
	for _, entry := range cfg.Demo.Roster {
		roster.Add(entry.Name, entry.Age)
	}
	log.Info(ctx, "Roster built", "size", roster.Len())

	removals := []string{}
	if len(cfg.Demo.Roster) > 1 {
		removals = append(removals, cfg.Demo.Roster[1].Name)
	}
	removals = append(removals, cfg.Demo.Roster[0].Name, "NoSuchName")

	steps := make([]script.StepResult, 0, len(removals)+1)
	steps = append(steps, script.StepResult{
		Index:   0,
		Op:      "print",
		Detail:  "initial roster",
		Outcome: script.OutcomeOK,
		List:    roster.String(),
	})

	for i, name := range removals {
		res := script.StepResult{
			Index:   i + 1,
			Op:      "remove-name",
			Detail:  fmt.Sprintf("remove name %q", name),
			Outcome: script.OutcomeOK,
		}
		if !roster.RemoveName(name) {
			res.Err = errs.NameNotFound(name).WithOp("remove-name")
			res.Outcome = "name not found"
			log.Warn(ctx, res.Err, "Step failed", "index", i+1)
		}
		res.List = roster.String()

		steps = append(steps, res)
	}

	result := &script.RunResult{
		Script: &script.Script{Name: "roster delete by name"},
		Steps:  steps,
	}
	script.Render(out, result, cfg.Output.Format)
}
