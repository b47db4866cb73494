// cmd/add.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/markb/smg/internal/log"
	"github.com/markb/smg/internal/migration"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new migration",
	Long: `Create a new migration in the migrations directory.

The name is sanitized into a filesystem-safe fragment. By default a paired
folder containing up.surql and down.surql is created, prefixed with the next
zero-padded number; --temporal switches to a UTC timestamp prefix and
--single creates one up-only .surql file instead of a folder.

Examples:
  smg add create_users
  smg add --temporal "add posts"
  smg add --single drop_legacy_index`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		temporal, _ := cmd.Flags().GetBool("temporal")
		single, _ := cmd.Flags().GetBool("single")

		dir, err := migration.ResolveDir(flagDir)
		if err != nil {
			return err
		}

		opts := migration.Options{
			Name:   args[0],
			Dir:    dir,
			Logger: log.Logger(),
		}
		if temporal {
			opts.Mode = migration.ModeTemporal
		}
		if single {
			opts.Layout = migration.LayoutSingle
		}

		res, err := migration.Create(opts)
		if err != nil {
			return err
		}

		log.Info("created migration", "path", res.Path, "prefix", res.Prefix)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolP("temporal", "t", false, "Use a timestamp prefix instead of a numeric one")
	addCmd.Flags().Bool("single", false, "Create a single .surql file instead of a paired up/down folder")
}
