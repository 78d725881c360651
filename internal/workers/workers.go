package workers

// Workers runs a fixed set of workers in registration order.
type Workers struct {
	workers []Worker
}

// New groups workers. They are started by Run in the given order.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
