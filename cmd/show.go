package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osa/recipes/internal/client"
	"github.com/osa/recipes/internal/clipboard"
	rerrors "github.com/osa/recipes/internal/errors"
	"github.com/osa/recipes/internal/logger"
	"github.com/osa/recipes/internal/recipe"
	"github.com/spf13/cobra"
)

var noInstructions bool

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print a recipe and its generated instructions",
	Long: `Prints the ingredients of the recipe with the given title, followed by
instructions generated by the backend. Titles are matched exactly, so quote
titles that contain spaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&noInstructions, "no-instructions", false, "Skip generating instructions")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	c := client.New(cfg.GetBaseURL())
	title := args[0]

	r, err := c.GetRecipe(cmd.Context(), title)
	if err != nil {
		if rerrors.StatusCode(err) == http.StatusNotFound {
			return fmt.Errorf("no recipe titled %q: %w", title, err)
		}
		return fmt.Errorf("error fetching recipe %q: %w", title, err)
	}

	var steps []string
	if !noInstructions {
		steps, err = c.GetInstructions(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("error fetching instructions for %q: %w", title, err)
		}
	}
	return printRecipe(cmd.OutOrStdout(), r, steps, !noInstructions)
}

// printRecipe writes a recipe in the same layout as the detail pane
func printRecipe(out io.Writer, r recipe.Recipe, steps []string, withInstructions bool) error {
	fmt.Fprintln(out, r.Title)
	fmt.Fprintf(out, "Serves: %d\n\n", r.Yield)

	fmt.Fprintln(out, "Ingredients")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(out, "  • %s\n", ing)
	}

	if !withInstructions {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Instructions")
	_, err := io.WriteString(out, clipboard.FormatSteps(steps))
	return err
}
