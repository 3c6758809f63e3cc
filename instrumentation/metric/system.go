// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"os"
	"time"

	"github.com/c9s/goprocinfo/linux"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/synchronization"
	"github.com/pkg/errors"
)

const systemReportInterval = 3 * time.Second

type systemMetrics struct {
	rssBytes       *Gauge
	cpuUtilization *Gauge
	threads        *Gauge
}

// cpuSample pairs this process's ticks with the machine's total ticks at the same moment
type cpuSample struct {
	process uint64
	total   uint64
}

type systemReporter struct {
	metrics  systemMetrics
	logger   log.Logger
	procRoot string
	previous *cpuSample
}

func NewSystemReporter(ctx context.Context, metricFactory Factory, logger log.Logger) *synchronization.PeriodicalTrigger {
	r := newSystemReporter(metricFactory, logger, "/proc")
	return synchronization.NewPeriodicalTrigger(ctx, "system metrics reporter", systemReportInterval, logger, r.report, nil)
}

func newSystemReporter(metricFactory Factory, logger log.Logger, procRoot string) *systemReporter {
	return &systemReporter{
		metrics: systemMetrics{
			rssBytes:       metricFactory.NewGauge("OS.Process.Memory.Bytes"),
			cpuUtilization: metricFactory.NewGauge("OS.Process.CPU.PerCent"),
			threads:        metricFactory.NewGauge("OS.Process.Threads.Count"),
		},
		logger:   logger,
		procRoot: procRoot,
	}
}

func (r *systemReporter) report() {
	if _, err := os.Stat(r.procRoot); os.IsNotExist(err) {
		return
	}

	process, err := linux.ReadProcess(uint64(os.Getpid()), r.procRoot)
	if err != nil {
		r.logger.Info("failed to read process stats", log.Error(err))
		return
	}
	r.metrics.rssBytes.UpdateUint64(process.Statm.Resident * uint64(os.Getpagesize()))
	r.metrics.threads.UpdateUint64(process.Status.Threads)

	sample, err := r.sampleCPU(process)
	if err != nil {
		r.logger.Info("failed to read cpu stats", log.Error(err))
		return
	}
	if r.previous != nil && sample.total > r.previous.total {
		percent := float64(sample.process-r.previous.process) / float64(sample.total-r.previous.total) * 100
		r.metrics.cpuUtilization.Update(int64(percent))
	}
	r.previous = sample
}

func (r *systemReporter) sampleCPU(process *linux.Process) (*cpuSample, error) {
	stat, err := linux.ReadStat(r.procRoot + "/stat")
	if err != nil {
		return nil, errors.Wrap(err, "reading machine cpu ticks")
	}
	all := stat.CPUStatAll
	ticks := process.Stat.Utime + process.Stat.Stime + uint64(process.Stat.Cutime+process.Stat.Cstime)
	return &cpuSample{
		process: ticks,
		total:   all.User + all.Nice + all.System + all.Idle,
	}, nil
}
