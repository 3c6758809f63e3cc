// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/bootstrap/httpserver"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/services/publicapi"
	"github.com/orbs-network/ticketchain/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/pkg/errors"
)

type Node struct {
	govnr.TreeSupervisor
	logger           log.Logger
	logic            NodeLogic
	httpServer       *httpserver.HttpServer
	statePersistence stateStorageAdapter.StatePersistence
	metricRegistry   metric.Registry
	cancel           context.CancelFunc
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	ctx, cancel := context.WithCancel(context.Background())
	metricRegistry := metric.NewRegistry()

	statePersistence, err := statestorage.NewStatePersistence(ctx, nodeConfig, logger, metricRegistry)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed to open state persistence")
	}

	nodeLogic := NewNodeLogic(ctx, statePersistence, logger, metricRegistry, nodeConfig)
	httpServer, err := httpserver.NewHttpServer(ctx, nodeConfig, logger, nodeLogic.PublicApi(), metricRegistry)
	if err != nil {
		cancel()
		if closeErr := statePersistence.Close(); closeErr != nil {
			logger.Error("failed to close state persistence", log.Error(closeErr))
		}
		return nil, err
	}

	n := &Node{
		logger:           logger,
		logic:            nodeLogic,
		httpServer:       httpServer,
		statePersistence: statePersistence,
		metricRegistry:   metricRegistry,
		cancel:           cancel,
	}
	n.Supervise(nodeLogic)
	n.Supervise(httpServer)

	return n, nil
}

// in-flight http requests finish before the state persistence closes
func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down node")
	n.httpServer.GracefulShutdown(shutdownContext)
	n.cancel()
	n.logic.WaitUntilShutdown(shutdownContext)
	if err := n.statePersistence.Close(); err != nil {
		n.logger.Error("failed to close state persistence", log.Error(err))
	}
}

func (n *Node) HttpPort() int {
	return n.httpServer.Port()
}

func (n *Node) PublicApi() publicapi.PublicApi {
	return n.logic.PublicApi()
}

func (n *Node) MetricRegistry() metric.Registry {
	return n.metricRegistry
}
