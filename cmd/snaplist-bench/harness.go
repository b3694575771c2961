package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/johnietre/snaplist"
	utils "github.com/johnietre/utils/go"
)

// Harness drives the end-to-end stress scenario (spec scenario 4) against
// a real List: a configurable number of producers append concurrently, a
// configurable number of consumers repeatedly snapshot-iterate and count,
// and an optional clearer periodically clears the list. Its lifecycle --
// config behind an RWMutex, an idempotent shutdown guarded by an atomic
// flag plus a closed channel, a WaitGroup joined before exit -- is carried
// over directly from the teacher's App.
type Harness struct {
	config *utils.RWMutex[BenchConfig]
	list   *snaplist.List[int64]

	appended atomic.Uint64
	cleared  atomic.Uint64

	consumerStats *utils.RWMutex[Slice[ConsumerStats]]

	shuttingDown atomic.Bool
	shutdownChan chan utils.Unit
	wg           sync.WaitGroup
}

func NewHarness(cfg BenchConfig) *Harness {
	return &Harness{
		config:        utils.NewRWMutex(cfg),
		list:          snaplist.New[int64](),
		consumerStats: utils.NewRWMutex(Slice[ConsumerStats]{}),
		shutdownChan:  make(chan utils.Unit),
	}
}

// Run starts all producers/consumers/the clearer, blocks until shutdown is
// triggered (every producer finishing, or an interrupt signal), and
// joins every goroutine before printing a final report.
func (h *Harness) Run() {
	cfg := *h.config.RLock()
	h.config.RUnlock()

	var producersWg sync.WaitGroup
	for i := 0; i < cfg.Producers; i++ {
		producersWg.Add(1)
		h.wg.Add(1)
		go func(id int) {
			defer producersWg.Done()
			defer h.wg.Done()
			h.runProducer(id, cfg.PerProducer)
		}(i)
	}

	for i := 0; i < cfg.Consumers; i++ {
		h.wg.Add(1)
		go func(id int) {
			defer h.wg.Done()
			h.runConsumer(id)
		}(i)
	}

	if cfg.ClearEvery > 0 {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.runClearer(cfg.ClearEvery)
		}()
	}

	intCh := make(chan os.Signal, 5)
	signal.Notify(intCh, os.Interrupt)
	go h.listenSignals(intCh)

	if cfg.Watch {
		go h.watchStatus()
	}

	go func() {
		producersWg.Wait()
		h.shutdown()
	}()

	<-h.shutdownChan
	h.wg.Wait()
	log.Print("EXITING")
	h.report()
}

func (h *Harness) runProducer(id, n int) {
	for i := 0; i < n; i++ {
		if h.isShuttingDown() {
			return
		}
		h.list.Append(int64(id)*int64(n) + int64(i))
		h.appended.Add(1)
	}
}

func (h *Harness) runConsumer(id int) {
	stats := ConsumerStats{ID: id}
	defer func() {
		h.consumerStats.Apply(func(sp *Slice[ConsumerStats]) {
			sp.Append(stats)
		})
	}()
	for {
		it := h.list.Iter()
		var n uint64
		it.ForEach(func(int64) bool {
			n++
			return true
		})
		stats.Observed += n
		stats.Passes++
		select {
		case <-h.shutdownChan:
			return
		case <-time.After(time.Millisecond):
		}
	}
}

func (h *Harness) runClearer(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			h.list.Clear()
			h.cleared.Add(1)
		case <-h.shutdownChan:
			return
		}
	}
}

func (h *Harness) shutdown() {
	if h.shuttingDown.Swap(true) {
		return
	}
	close(h.shutdownChan)
	log.Print("SHUTTING DOWN")
}

func (h *Harness) isShuttingDown() bool {
	return h.shuttingDown.Load()
}

func (h *Harness) listenSignals(ch chan os.Signal) {
	exiting := false
	for range ch {
		if exiting {
			Die(0, "EXITING")
		}
		exiting = true
		h.shutdown()
	}
}

type report struct {
	Appended      uint64          `json:"appended"`
	Cleared       uint64          `json:"cleared"`
	FinalLen      uint64          `json:"final_len"`
	ConsumerStats []ConsumerStats `json:"consumer_stats"`
}

func (h *Harness) report() {
	r := report{
		Appended: h.appended.Load(),
		Cleared:  h.cleared.Load(),
		FinalLen: h.list.Len(),
	}
	h.consumerStats.RApply(func(sp *Slice[ConsumerStats]) {
		r.ConsumerStats = sp.Data
	})
	if err := json.NewEncoder(os.Stdout).Encode(r); err != nil {
		Dief(1, "error encoding report: %v", err)
	}
}
