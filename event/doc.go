// Package event exposes worker event loop registration: timers,
// posted events, and the cross-thread notify wakeup. The Loop
// interface is the seam the async bridge schedules through; WorkerLoop
// is the native implementation.
//
// Everything except Post and Notify is worker thread only. The worker
// thread is the C thread running the event cycle, identified by kernel
// thread id the first time the loop is attached.
package event
