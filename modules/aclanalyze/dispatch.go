package aclanalyze

import (
	"runtime"
	"sync"
)

// Task is one independent unit of work: an entry identity, its object class
// and the raw descriptor bytes. Tasks share no state, so ordering between
// them is irrelevant.
type Task struct {
	ID         string
	Class      ObjectClass
	Descriptor []byte
}

// Result carries the relations for one task. Err is set when that task's
// descriptor was malformed; sibling tasks are unaffected.
type Result struct {
	ID        string
	Relations []Relation
	Err       error
}

// Pool fans Evaluate out over a fixed set of workers. Submit from any number
// of goroutines, Close when done, and drain Results until it is closed.
type Pool struct {
	tasks   chan Task
	results chan Result
	done    sync.WaitGroup
}

func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		tasks:   make(chan Task, 8192),
		results: make(chan Result, 8192),
	}
	for i := 0; i < workers; i++ {
		p.done.Add(1)
		go func() {
			defer p.done.Done()
			for task := range p.tasks {
				relations, err := Evaluate(task.Class, task.Descriptor)
				p.results <- Result{ID: task.ID, Relations: relations, Err: err}
			}
		}()
	}
	go func() {
		p.done.Wait()
		close(p.results)
	}()
	return p
}

func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close stops intake. Results stays open until the workers drain the queue.
func (p *Pool) Close() {
	close(p.tasks)
}
