// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"flag"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/orbs-network/ticketchain/primitives"
)

var seedFlag = flag.String("test.randSeed", "", "random seed for tests, or 'launchClock' to share one seed across the run")

var launchSeed = time.Now().UTC().UnixNano()

type SeedLogger interface {
	Logf(format string, args ...interface{})
	Name() string
}

// ControlledRand is a math/rand source whose seed is logged so a failing run can be replayed with -test.randSeed.
type ControlledRand struct {
	sync.Mutex
	r *rand.Rand
}

func NewControlledRand(t SeedLogger) *ControlledRand {
	seed := chooseSeed()
	t.Logf("random seed %d (%s)", seed, t.Name())
	return &ControlledRand{r: rand.New(rand.NewSource(seed))}
}

func chooseSeed() int64 {
	switch *seedFlag {
	case "":
		return time.Now().UTC().UnixNano()
	case "launchClock":
		return launchSeed
	}
	seed, err := strconv.ParseInt(*seedFlag, 0, 64)
	if err != nil {
		panic("invalid -test.randSeed: " + *seedFlag)
	}
	return seed
}

func (c *ControlledRand) Intn(n int) int {
	c.Lock()
	defer c.Unlock()
	return c.r.Intn(n)
}

func (c *ControlledRand) Uint32() uint32 {
	c.Lock()
	defer c.Unlock()
	return c.r.Uint32()
}

// TicketAmount is usually small, but one draw in four spans the whole uint32 range so totals saturate.
func (c *ControlledRand) TicketAmount() uint32 {
	if c.Intn(4) == 0 {
		return c.Uint32()
	}
	return uint32(c.Intn(1000))
}

func (c *ControlledRand) ClientAddress() primitives.ClientAddress {
	c.Lock()
	defer c.Unlock()
	addr := make(primitives.ClientAddress, 20)
	c.r.Read(addr)
	return addr
}
