// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization_test

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/synchronization"
	"github.com/orbs-network/ticketchain/test"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestPeriodicalTrigger_FiresRepeatedly(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		var fired int32
		p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Millisecond, log.DefaultTestingLogger(t), func() {
			atomic.AddInt32(&fired, 1)
		}, nil)
		defer p.Stop()

		require.True(t, test.Eventually(func() bool {
			return atomic.LoadInt32(&fired) >= 3
		}), "expected at least three ticks")
		require.True(t, p.TimesTriggered() >= 3)
	})
}

func TestPeriodicalTrigger_StopRunsOnStopAndHaltsTicks(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		var fired int32
		stopped := make(chan struct{})
		p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Millisecond, log.DefaultTestingLogger(t), func() {
			atomic.AddInt32(&fired, 1)
		}, func() {
			close(stopped)
		})

		p.Stop()
		<-stopped

		afterStop := atomic.LoadInt32(&fired)
		time.Sleep(5 * time.Millisecond)
		require.Equal(t, afterStop, atomic.LoadInt32(&fired), "no ticks after stop")
	})
}

func TestPeriodicalTrigger_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := synchronization.NewPeriodicalTrigger(ctx, "test trigger", time.Hour, log.DefaultTestingLogger(t), func() {}, nil)
	cancel()

	select {
	case <-p.Closed:
	case <-time.After(time.Second):
		t.Fatal("trigger did not exit after context was cancelled")
	}
}
