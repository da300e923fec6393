package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/pharma-admin/modules"
	"github.com/iota-uz/pharma-admin/pkg/configuration"
)

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "console",
		Short:         "Pharmacy back-office console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s.checkToken(time.Now())
		},
	}
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)
	cmd.PersistentFlags().BoolVarP(&s.yes, "yes", "y", false, "Answer yes to every confirmation")

	for _, screen := range s.app.Screens() {
		cmd.AddCommand(newScreenCmd(s, screen))
	}
	cmd.AddCommand(newDashboardCmd(s))
	cmd.AddCommand(newFindCmd(s))
	return cmd
}

func Execute() {
	conf := configuration.Use()
	s, err := newSession(sessionOptions{
		Config:  conf,
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Modules: modules.BuiltInModules,
	})
	if err != nil {
		conf.Unload()
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitFailure)
	}
	err = newRootCmd(s).Execute()
	conf.Unload()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitCode(err))
	}
}
