package ringchan

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	a := newTestChannel[int](4, WithName("a"))
	b := newTestChannel[string](2, WithName("b"), WithBuffer(DequeBuffer))
	a.Send(1)
	a.Send(2)
	b.TryReceive()
	b.Close()

	col := NewCollector(a, b)
	if n := testutil.CollectAndCount(col); n != 20 {
		t.Fatalf("expected 20 metrics, got %d", n)
	}

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(col)
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	values := map[string]map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += lp.GetName() + "=" + lp.GetValue() + ","
			}
			if values[mf.GetName()] == nil {
				values[mf.GetName()] = map[string]float64{}
			}
			v := m.GetGauge().GetValue()
			if m.GetCounter() != nil {
				v = m.GetCounter().GetValue()
			}
			values[mf.GetName()][labels] = v
		}
	}

	checks := []struct {
		metric, labels string
		want           float64
	}{
		{"ringchan_buffered_items", "chan=a,", 2},
		{"ringchan_capacity", "chan=b,", 2},
		{"ringchan_closed", "chan=a,", 0},
		{"ringchan_closed", "chan=b,", 1},
		{"ringchan_attempts_total", "chan=a,dir=send,", 2},
		{"ringchan_rejected_total", "chan=b,dir=recv,", 1},
	}
	for _, c := range checks {
		if got := values[c.metric][c.labels]; got != c.want {
			t.Errorf("%s{%s} = %v, want %v", c.metric, c.labels, got, c.want)
		}
	}
}
