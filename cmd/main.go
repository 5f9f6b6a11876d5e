package main

import (
	"fmt"
	"os"

	"nutriclinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nutriclinic",
		Short:         "Patient records, prescriptions and ledger for a nutrition clinic",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Serving is the default action.
		RunE: runServe,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Reconcile the schema and start the HTTP server",
		RunE:  runServe,
	})
	root.AddCommand(&cobra.Command{
		Use:   "reconcile",
		Short: "Bring the database schema up to date and exit",
		RunE:  runReconcile,
	})

	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Initialize application with all dependencies
	app, err := bootstrap.New(cmd.Context())
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}

	// Run the application
	app.Run()
	return nil
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	added, err := bootstrap.Reconcile(cmd.Context())
	if err != nil {
		logrus.Errorf("Schema reconciliation failed: %v", err)
		return err
	}

	if len(added) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	}
	for _, col := range added {
		fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", col)
	}
	return nil
}
