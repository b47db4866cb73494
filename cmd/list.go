// cmd/list.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markb/smg/internal/migration"
	"github.com/markb/smg/internal/source"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List migrations in the migrations directory",
	Long: `Show all migrations discovered in the migrations directory, in apply order.

Examples:
  smg list
  smg list --dir db/migrations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := migration.ResolveDir(flagDir)
		if err != nil {
			return err
		}

		migrations, err := source.NewDir(dir).List()
		if err != nil {
			return fmt.Errorf("failed to read migrations: %w", err)
		}

		if len(migrations) == 0 {
			fmt.Println("No migrations found in", dir)
			return nil
		}

		fmt.Printf("%-50s %s\n", "NAME", "KIND")
		fmt.Println(strings.Repeat("-", 60))
		for _, m := range migrations {
			fmt.Printf("%-50s %s\n", m.Name, m.Kind)
		}
		fmt.Printf("%d migration(s)\n", len(migrations))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
