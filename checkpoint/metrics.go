package checkpoint

import (
	"github.com/Skryptex/SKX-EDIT/metrics"
)

const namespace = "checkpoint"

var (
	checks = metrics.NewCounter(
		"checks",
		namespace,
		"number of blocks checked against checkpoints",
		[]string{"outcome"},
	)
	checkOK            = checks.WithLabelValues("ok")
	checkMismatch      = checks.WithLabelValues("mismatch")
	checkUnconstrained = checks.WithLabelValues("unconstrained")
	checkDisabled      = checks.WithLabelValues("disabled")
)
