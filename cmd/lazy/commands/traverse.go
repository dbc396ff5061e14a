package commands

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmksnnk/lazy"
)

func newTraverseCmd() *cobra.Command {
	var (
		treeFile string
		order    string
	)

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print the nodes of a YAML tree in depth-first or breadth-first order",
		Long: `Print the nodes of a YAML tree in depth-first or breadth-first order.

The tree file holds nested nodes, leaves have no children:

  value: "1"
  children:
    - value: "2"
    - value: "3"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(cmd.InOrStdin(), treeFile)
			if err != nil {
				return err
			}

			var nodes iter.Seq[*lazy.Node[string]]
			switch order {
			case "dfs", "depth":
				nodes, err = lazy.DepthFirst(root)
			case "bfs", "breadth":
				nodes, err = lazy.BreadthFirst(root)
			default:
				return fmt.Errorf("unknown order %q, want dfs or bfs", order)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := 0
			for node := range nodes {
				if _, err := fmt.Fprintln(out, node.Value); err != nil {
					return err
				}
				n++
			}
			slog.Debug("tree traversed", "file", treeFile, "order", order, "nodes", n)

			return nil
		},
	}

	cmd.Flags().StringVarP(&treeFile, "tree", "t", "", `YAML tree file, "-" reads stdin`)
	cmd.Flags().StringVarP(&order, "order", "o", "dfs", "traversal order: dfs or bfs")
	_ = cmd.MarkFlagRequired("tree")

	return cmd
}

// loadTree reads a tree from path, or from stdin if path is "-".
// An empty document yields a nil root.
func loadTree(stdin io.Reader, path string) (*lazy.Node[string], error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}

	var root *lazy.Node[string]
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse tree %s: %w", path, err)
	}

	return root, nil
}
