package session

import "sync"

// Executor runs functions on the session's designated context: the one
// goroutine allowed to touch session state and to call back into the
// presentation layer.
type Executor interface {
	Do(fn func())
}

// Loop is an event loop: a single goroutine running queued functions in order.
type Loop struct {
	funcs chan func()
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewLoop starts a loop goroutine.
func NewLoop() *Loop {
	l := &Loop{
		funcs: make(chan func(), 16),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.funcs:
			fn()
		case <-l.quit:
			return
		}
	}
}

// Do queues fn. After Close it is dropped.
func (l *Loop) Do(fn func()) {
	select {
	case l.funcs <- fn:
	case <-l.quit:
	}
}

// Call runs fn on the loop and waits for it to return. It reports false if the
// loop was closed before fn ran. Calling it from the loop goroutine deadlocks.
func (l *Loop) Call(fn func()) bool {
	ran := make(chan struct{})
	l.Do(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return true
	case <-l.done:
		select {
		case <-ran:
			return true
		default:
			return false
		}
	}
}

// Close stops the loop and waits for the running function, if any.
// Queued functions that have not started are discarded.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.quit) })
	<-l.done
}
