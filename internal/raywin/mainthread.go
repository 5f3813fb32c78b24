package raywin

// mainThread hands text measurement to the goroutine that owns the raylib
// context. Callers block until the next serve or until close.
type mainThread struct {
	reqs chan measureReq
	done chan struct{}
}

type measureReq struct {
	text  string
	bold  bool
	reply chan [2]int
}

func newMainThread() *mainThread {
	return &mainThread{reqs: make(chan measureReq), done: make(chan struct{})}
}

// measure is safe from any goroutine. It returns 0, 0 once closed.
func (m *mainThread) measure(text string, bold bool) (int, int) {
	req := measureReq{text: text, bold: bold, reply: make(chan [2]int, 1)}
	select {
	case m.reqs <- req:
	case <-m.done:
		return 0, 0
	}
	wh := <-req.reply
	return wh[0], wh[1]
}

// serve answers every pending request with f and returns without waiting.
func (m *mainThread) serve(f func(text string, bold bool) (int, int)) {
	for {
		select {
		case req := <-m.reqs:
			w, h := f(req.text, req.bold)
			req.reply <- [2]int{w, h}
		default:
			return
		}
	}
}

func (m *mainThread) close() { close(m.done) }
