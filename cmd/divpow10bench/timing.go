package main

import (
	"sort"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/codahale/metrics"
	"github.com/db47h/divpow10"
)

var nsPerCallGauge = metrics.Gauge("divpow10.ns_per_call")

type timing struct {
	median    time.Duration // median time of a pass over all inputs
	nsPerCall float64
	avgExp    float64
	hist      *hdrhistogram.Histogram // tenths of ns per call, one value per pass
}

var sink uint64

// timeDiv divides all the inputs nIter times.
func timeDiv(v *divpow10.Variant, in []input, nIter int) timing {
	tm := make([]time.Duration, nIter)
	h := hdrhistogram.New(1, 1e7, 3)
	var dummy uint64
	for it := range tm {
		t0 := time.Now()
		for i := range in {
			q, c := v.Div(&in[i].x, in[i].n)
			dummy ^= q[0] ^ q[1] ^ uint64(c)
		}
		tm[it] = time.Since(t0)
		if err := h.RecordValue(int64(tm[it]) * 10 / int64(len(in))); err != nil {
			log.Warnf("pass %d: %v", it, err)
		}
	}
	sink = dummy

	var sum uint64
	for i := range in {
		sum += uint64(in[i].n)
	}
	sort.Slice(tm, func(i, j int) bool { return tm[i] < tm[j] })
	med := tm[nIter/2]
	nsPerCallGauge.Set(int64(med) / int64(len(in)))
	return timing{
		median:    med,
		nsPerCall: float64(med) / float64(len(in)),
		avgExp:    float64(sum) / float64(len(in)),
		hist:      h,
	}
}

func logCounters() {
	counters, gauges := metrics.Snapshot()
	names := make([]string, 0, len(counters))
	for k := range counters {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		log.Infof("%s: %d", k, counters[k])
	}
	names = names[:0]
	for k := range gauges {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		log.Debugf("%s: %d", k, gauges[k])
	}
}
