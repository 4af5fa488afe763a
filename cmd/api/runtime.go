package main

import (
	"fmt"
	"os"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"go.uber.org/automaxprocs/maxprocs"
)

func stderrf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

// Size GOMAXPROCS and GOMEMLIMIT to the container before anything else runs.
func init() {
	if _, err := maxprocs.Set(maxprocs.Logger(stderrf)); err != nil {
		stderrf("failed to set maxprocs: %v", err)
	}

	_, err := memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(0.8),
		memlimit.WithProvider(
			memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			),
		),
	)
	if err != nil {
		stderrf("failed to set memory limit: %v", err)
	}
}
