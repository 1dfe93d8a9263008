// Package async bridges goroutine work back onto the worker event
// loop. Work runs wherever the Go scheduler puts it; results and
// continuations are marshaled onto the loop thread, so handler code
// never touches request state off-thread.
//
// Tasks belong to a Group, typically scoped to a request pool. When
// the group is cancelled every suspended task is rejected with a
// cancelled error and later completions are discarded: a cancelled
// task never resumes successfully.
package async
