package reqstate

import (
	"testing"

	"github.com/ngx-go/ngx/core"
)

func TestForStatus(t *testing.T) {
	tests := []struct {
		status core.Status
		want   HandlerState
	}{
		{core.OK, StateCompleted},
		{core.Done, StateCompleted},
		{core.Declined, StateDeclined},
		{core.Again, StateSuspended},
		{core.Status(204), StateCompleted},
		{core.Status(301), StateCompleted},
		{core.Status(404), StateFailed},
		{core.Status(502), StateFailed},
		{core.Error, StateFailed},
		{core.Abort, StateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := ForStatus(tt.status); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// The rewrite checker does not park on AGAIN: it hands AGAIN straight
// to request finalization, which installs the output writer and never
// re-enters the phase engine. Suspending there must use the DONE
// convention; the generic and access checkers park on AGAIN.
func TestSuspendStatus(t *testing.T) {
	tests := []struct {
		phase Phase
		want  core.Status
	}{
		{RewritePhase, core.Done},
		{PreaccessPhase, core.Again},
		{AccessPhase, core.Again},
		{PrecontentPhase, core.Again},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			if got := SuspendStatus(tt.phase); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
