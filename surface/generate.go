// Copyright ©2024 The Arma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/stochasticwave/arma/coef"
	"github.com/stochasticwave/arma/grid"
	"github.com/stochasticwave/arma/prng"
)

// Config describes a parallel surface generation run.
type Config struct {
	AR        *coef.AR
	Out       grid.Grid3
	Pool      *prng.Pool
	Partition [3]int // explicit partition shape; zero picks one automatically
	// Workers is the number of goroutines computing partitions
	// concurrently. Zero defaults to runtime.GOMAXPROCS(0).
	Workers int
}

// Generate fills a surface on cfg.Out matching cfg.AR, drawing one
// independent noise stream per partition from cfg.Pool (consumed in
// partition-sequence order, so the pool must hold at least as many
// configurations as there are partitions; this is checked up front,
// before any partition is computed).
func Generate(ctx context.Context, cfg Config) (*grid.Discrete3, error) {
	shape := cfg.Out.Num
	parallelism := cfg.Workers
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	partshape := PartitionShape(cfg.Partition, cfg.AR.Order, shape, parallelism)
	parts := BuildPartitions(shape, partshape)
	nparts := NumPartitions(shape, partshape)

	streams, err := cfg.Pool.Take(len(parts))
	if err != nil {
		return nil, err
	}

	zeta := grid.NewDiscrete3(cfg.Out)
	completed := newBoolGrid(nparts)
	sched := &scheduler{
		pending:   append([]Partition(nil), parts...),
		completed: completed,
		nparts:    nparts,
	}
	sched.cond = sync.NewCond(&sched.mu)

	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			sched.mu.Lock()
			sched.cond.Broadcast()
			sched.mu.Unlock()
		case <-watchDone:
		}
	}()
	defer close(watchDone)

	var wg sync.WaitGroup
	for w := 0; w < parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				part, ok := sched.next(ctx)
				if !ok {
					return
				}
				fillPartition(zeta, cfg.AR, streams[part.Seq], part)
				sched.markDone(part)
			}
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return zeta, nil
}

// scheduler implements the shared mutex+condvar work queue: a worker
// holding the lock scans pending for a partition whose seven immediate
// predecessors (the partitions at ijk-1..ijk along every axis, save
// itself) are already completed, removes it from pending, and releases
// the lock to compute it.
type scheduler struct {
	mu        sync.Mutex
	cond      *sync.Cond
	pending   []Partition
	completed [][][]bool
	nparts    [3]int
}

func (s *scheduler) next(ctx context.Context) (Partition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if ctx.Err() != nil {
			return Partition{}, false
		}
		for i, p := range s.pending {
			if s.readyLocked(p) {
				s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
				return p, true
			}
		}
		if len(s.pending) == 0 {
			return Partition{}, false
		}
		s.cond.Wait()
	}
}

func (s *scheduler) readyLocked(p Partition) bool {
	for di := -1; di <= 0; di++ {
		for dj := -1; dj <= 0; dj++ {
			for dk := -1; dk <= 0; dk++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				n := [3]int{p.IJK[0] + di, p.IJK[1] + dj, p.IJK[2] + dk}
				if n[0] < 0 || n[1] < 0 || n[2] < 0 {
					continue
				}
				if !s.completed[n[0]][n[1]][n[2]] {
					return false
				}
			}
		}
	}
	return true
}

func (s *scheduler) markDone(p Partition) {
	s.mu.Lock()
	s.completed[p.IJK[0]][p.IJK[1]][p.IJK[2]] = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

func newBoolGrid(n [3]int) [][][]bool {
	g := make([][][]bool, n[0])
	for i := range g {
		g[i] = make([][]bool, n[1])
		for j := range g[i] {
			g[i][j] = make([]bool, n[2])
		}
	}
	return g
}

// fillPartition draws white noise for part and applies the AR
// recurrence in row-major order, reading already-written predecessor
// cells (from this or an earlier-completed partition) out of the
// shared zeta array.
func fillPartition(zeta *grid.Discrete3, ar *coef.AR, noise *prng.Stream, part Partition) {
	order := ar.Order
	n := part.Shape()
	wn := noise.Normal(n[0]*n[1]*n[2], ar.Variance)
	idx := 0
	for i := part.Lo[0]; i <= part.Hi[0]; i++ {
		for j := part.Lo[1]; j <= part.Hi[1]; j++ {
			for k := part.Lo[2]; k <= part.Hi[2]; k++ {
				var sum float64
				for l := 0; l < order[0]; l++ {
					if i-l < 0 {
						continue
					}
					for m := 0; m < order[1]; m++ {
						if j-m < 0 {
							continue
						}
						for p := 0; p < order[2]; p++ {
							if l == 0 && m == 0 && p == 0 {
								continue
							}
							if k-p < 0 {
								continue
							}
							sum += ar.Coef.At(l, m, p) * zeta.At(i-l, j-m, k-p)
						}
					}
				}
				zeta.Set(i, j, k, sum+wn[idx])
				idx++
			}
		}
	}
}
