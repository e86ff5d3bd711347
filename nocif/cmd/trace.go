package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nocif/datarecording"
	"github.com/sarchlab/nocif/tracing"
)

type traceOptions struct {
	path   string
	node   int
	limit  int
	offset int
}

var traceCmd = &cobra.Command{
	Use:   "trace <file.sqlite3>",
	Short: "Print a trace recorded in a SQLite database.",
	Long: "Print the events recorded when watch_out names a .sqlite3 file, " +
		"in cycle order.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := traceOptions{path: args[0]}
		flags := cmd.Flags()

		opts.node, _ = flags.GetInt("node")
		opts.limit, _ = flags.GetInt("limit")
		opts.offset, _ = flags.GetInt("offset")

		return printTrace(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().Int("node", -1, "Only print events at this node")
	traceCmd.Flags().Int("limit", 0, "Maximum number of events, 0 for all")
	traceCmd.Flags().Int("offset", 0, "Number of events to skip, used with --limit")
}

func printTrace(ctx context.Context, opts traceOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reader, err := datarecording.NewReader(opts.path)
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(tracing.TableName, tracing.Record{})

	params := datarecording.QueryParams{
		OrderBy: "Cycle",
		Limit:   opts.limit,
		Offset:  opts.offset,
	}

	if opts.node >= 0 {
		params.Where = "Node = ?"
		params.Args = []any{opts.node}
	}

	results, total, err := reader.Query(ctx, tracing.TableName, params)
	if err != nil {
		return err
	}

	for _, r := range results {
		rec := r.(*tracing.Record)
		fmt.Fprintf(w, "%d, %s, %s, %d, %d, %d, %s\n",
			rec.Cycle, rec.Where, rec.What,
			rec.Subnet, rec.Node, rec.VC, rec.ID)
	}

	fmt.Fprintf(w, "%d of %d events\n", len(results), total)

	return nil
}
