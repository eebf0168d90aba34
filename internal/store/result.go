package store

import (
	"context"
	"sync"
)

// Result は非同期書き込みの完了通知です
type Result struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

// NewResult は未完了の Result と、それを完了させる関数を返します。
// 2回目以降の完了は無視されます
func NewResult() (*Result, func(error)) {
	r := newResult()
	return r, r.complete
}

// Completed は既に完了済みの Result を返します
func Completed(err error) *Result {
	r := newResult()
	r.complete(err)
	return r
}

func (r *Result) complete(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Done は書き込みが終わると閉じられます
func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Err は完了前は nil を返します
func (r *Result) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Wait は完了まで待ち、書き込みのエラーを返します
func (r *Result) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
