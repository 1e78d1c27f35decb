package ringbuffer

import (
	"sync"
	"testing"
	"time"
)

func TestStatisticsCounters(t *testing.T) {
	s := NewStatistics()

	s.Add()
	s.Add()
	s.Remove()
	s.Evict()
	s.Set()
	s.Clear()
	s.Read()
	s.Read()
	s.Read()

	checks := []struct {
		name string
		got  int64
		want int64
	}{
		{"adds", s.Adds(), 2},
		{"removes", s.Removes(), 1},
		{"evictions", s.Evictions(), 1},
		{"sets", s.Sets(), 1},
		{"clears", s.Clears(), 1},
		{"reads", s.Reads(), 3},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Errorf("Expected %d %s, got %d", check.want, check.name, check.got)
		}
	}
}

func TestStatisticsSizeTracking(t *testing.T) {
	s := NewStatistics()

	s.UpdateSize(3)
	s.UpdateSize(7)
	s.UpdateSize(2)

	if s.CurrentSize() != 2 {
		t.Errorf("Expected current size 2, got %d", s.CurrentSize())
	}
	if s.MaxSize() != 7 {
		t.Errorf("Expected max size 7, got %d", s.MaxSize())
	}
}

func TestStatisticsRates(t *testing.T) {
	s := NewStatistics()

	if s.EvictionRate() != 0 {
		t.Errorf("Eviction rate without adds should be 0, got %f", s.EvictionRate())
	}

	s.Add()
	s.Add()
	s.Add()
	s.Add()
	s.Evict()
	s.Evict()

	if s.EvictionRate() != 0.5 {
		t.Errorf("Expected eviction rate 0.5, got %f", s.EvictionRate())
	}

	s.UpdateSize(5)
	if s.Utilization(10) != 0.5 {
		t.Errorf("Expected utilization 0.5, got %f", s.Utilization(10))
	}
	if s.Utilization(0) != 0 {
		t.Errorf("Utilization with zero capacity should be 0, got %f", s.Utilization(0))
	}

	time.Sleep(time.Millisecond)
	if s.Throughput() <= 0 {
		t.Errorf("Throughput should be positive after adds, got %f", s.Throughput())
	}
	if s.Uptime() <= 0 {
		t.Errorf("Uptime should be positive, got %v", s.Uptime())
	}
}

func TestStatisticsReset(t *testing.T) {
	s := NewStatistics()

	s.Add()
	s.Evict()
	s.Read()
	s.UpdateSize(5)

	s.Reset()

	if s.Adds() != 0 || s.Evictions() != 0 || s.Reads() != 0 {
		t.Error("Expected counters to be zeroed after reset")
	}
	if s.CurrentSize() != 0 || s.MaxSize() != 0 {
		t.Error("Expected sizes to be zeroed after reset")
	}
}

func TestStatisticsSummary(t *testing.T) {
	s := NewStatistics()

	s.Add()
	s.Add()
	s.Remove()
	s.UpdateSize(1)

	summary := s.Summary()
	if summary.Adds != 2 {
		t.Errorf("Expected 2 adds in summary, got %d", summary.Adds)
	}
	if summary.Removes != 1 {
		t.Errorf("Expected 1 remove in summary, got %d", summary.Removes)
	}
	if summary.CurrentSize != 1 || summary.MaxSize != 1 {
		t.Errorf("Expected sizes 1/1 in summary, got %d/%d",
			summary.CurrentSize, summary.MaxSize)
	}
	if summary.Uptime <= 0 {
		t.Errorf("Expected positive uptime in summary, got %v", summary.Uptime)
	}
}

func TestStatisticsConcurrent(t *testing.T) {
	s := NewStatistics()

	var wg sync.WaitGroup
	workers := 8
	perWorker := 1000

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Add()
				s.Read()
				s.UpdateSize(int64(i))
			}
		}()
	}
	wg.Wait()

	want := int64(workers * perWorker)
	if s.Adds() != want {
		t.Errorf("Expected %d adds, got %d", want, s.Adds())
	}
	if s.Reads() != want {
		t.Errorf("Expected %d reads, got %d", want, s.Reads())
	}
	if s.MaxSize() != int64(perWorker-1) {
		t.Errorf("Expected max size %d, got %d", perWorker-1, s.MaxSize())
	}
}
