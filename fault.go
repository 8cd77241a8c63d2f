package parloop

import (
	"fmt"
	"log"
)

// FaultHandler is the diagnostic sink for contained per-item failures.
// Implementations must be safe for concurrent use; workers invoke the handler
// directly. The handler must not block for long, since it runs on the hot
// path of the worker that contained the fault.
type FaultHandler func(err error)

// logFaults is the default FaultHandler. It writes to the standard logger.
func logFaults(err error) {
	log.Printf("%s: contained fault: %v", Namespace, err)
}

// recoverFault is installed with defer around every body invocation. It turns
// a panic into an ErrBodyPanicked-wrapped error and hands it to the sink, so
// one bad item never skips its siblings or abandons the completion barrier.
func (s *sched) recoverFault() {
	r := recover()
	if r == nil {
		return
	}
	s.faults.Add(1)
	s.report(fmt.Errorf("%w: %v", ErrBodyPanicked, r))
}

// report funnels a contained failure to the configured handler. A panicking
// handler must not take down the worker, so the call is guarded too.
func (s *sched) report(err error) {
	defer func() { _ = recover() }()
	s.cfg.faults(err)
}
