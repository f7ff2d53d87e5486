// checkpoints inspects block checkpoints and estimates initial verification
// progress.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Skryptex/SKX-EDIT/cmd"
	"github.com/Skryptex/SKX-EDIT/cmd/checkpoints"
	"github.com/Skryptex/SKX-EDIT/log"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := checkpoints.GetCommand().Execute(); err != nil {
		var fatal *log.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fatal.Code, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
