package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osa/recipes/internal/client"
	"github.com/osa/recipes/internal/logger"
	"github.com/osa/recipes/internal/recipe"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the recipes served by the backend",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	recipes, err := client.New(cfg.GetBaseURL()).ListRecipes(cmd.Context())
	if err != nil {
		return fmt.Errorf("error listing recipes: %w", err)
	}
	return printRecipes(cmd.OutOrStdout(), recipes)
}

// printRecipes writes one line per recipe with its yield in a second column
func printRecipes(out io.Writer, recipes []recipe.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(out, "No recipes.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TITLE\tSERVES")
	for _, r := range recipes {
		fmt.Fprintf(w, "%s\t%d\n", r.Title, r.Yield)
	}
	return w.Flush()
}
