package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-copilot/internal/intent"
)

var (
	ErrStopped   = errors.New("worker pool stopped")
	ErrNilIntent = errors.New("nil intent")
)

type Dispatcher interface {
	Dispatch(ctx context.Context, in intent.Intent) string
}

type job struct {
	ctx   context.Context
	in    intent.Intent
	reply chan string
}

// Pool выполняет интенты ассистента фиксированным числом воркеров
type Pool struct {
	dispatcher Dispatcher
	logger     *zap.Logger
	count      int
	jobs       chan job
	wg         sync.WaitGroup
	stop       chan struct{}
	haltOnce   sync.Once
	stopOnce   sync.Once
}

func NewPool(dispatcher Dispatcher, logger *zap.Logger, count int) *Pool {
	if count < 1 {
		count = 1
	}
	return &Pool{
		dispatcher: dispatcher,
		logger:     logger,
		count:      count,
		jobs:       make(chan job),
		stop:       make(chan struct{}),
	}
}

// Start запускает воркеров; отмена ctx останавливает пул так же, как Stop.
func (p *Pool) Start(ctx context.Context) {
	p.logger.Info("Starting worker pool", zap.Int("workers", p.count))

	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Stopping worker pool...")
		p.halt()
		p.wg.Wait()
		p.logger.Info("Worker pool stopped")
	})
}

// halt закрывает stop, не дожидаясь воркеров
func (p *Pool) halt() {
	p.haltOnce.Do(func() { close(p.stop) })
}

// Submit блокируется до ответа воркера, отмены ctx или остановки пула.
func (p *Pool) Submit(ctx context.Context, in intent.Intent) (string, error) {
	if in == nil {
		return "", ErrNilIntent
	}
	j := job{ctx: ctx, in: in, reply: make(chan string, 1)}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.stop:
		return "", ErrStopped
	}

	select {
	case reply := <-j.reply:
		return reply, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			p.halt()
			return
		case j := <-p.jobs:
			p.process(id, j)
		}
	}
}

func (p *Pool) process(workerID int, j job) {
	if j.ctx.Err() != nil { // клиент уже ушел
		return
	}

	started := time.Now()
	reply := p.dispatcher.Dispatch(j.ctx, j.in)
	j.reply <- reply

	p.logger.Debug("Intent processed",
		zap.Int("worker", workerID),
		zap.String("action", j.in.Action()),
		zap.Duration("took", time.Since(started)),
	)
}
