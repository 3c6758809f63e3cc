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
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/services/processor/native"
	"github.com/orbs-network/ticketchain/services/processor/native/repository"
	"github.com/orbs-network/ticketchain/services/publicapi"
	"github.com/orbs-network/ticketchain/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/ticketchain/services/statestorage/adapter"
	"github.com/orbs-network/ticketchain/services/virtualmachine"
)

type NodeLogic interface {
	govnr.ShutdownWaiter
	PublicApi() publicapi.PublicApi
}

type nodeLogic struct {
	govnr.TreeSupervisor
	publicApi publicapi.PublicApi
}

func NewNodeLogic(
	ctx context.Context,
	statePersistence stateStorageAdapter.StatePersistence,
	logger log.Logger,
	metricRegistry metric.Registry,
	nodeConfig config.NodeConfig,
) NodeLogic {
	metric.RegisterConfigIndicators(metricRegistry, nodeConfig)

	stateStorageService := statestorage.NewStateStorage(statePersistence, logger, metricRegistry)
	processor := native.NewNativeProcessor(repository.Contracts, logger, metricRegistry)
	virtualMachineService := virtualmachine.NewVirtualMachine(ctx, nodeConfig, stateStorageService, processor, logger, metricRegistry)
	publicApiService := publicapi.NewPublicApi(nodeConfig, virtualMachineService, logger, metricRegistry)

	logic := &nodeLogic{publicApi: publicApiService}
	logic.Supervise(virtualMachineService)
	logic.Supervise(metric.NewSystemReporter(ctx, metricRegistry, logger))
	logic.Supervise(metric.NewRuntimeReporter(ctx, metricRegistry, logger))
	if interval := nodeConfig.MetricsReportInterval(); interval > 0 {
		logic.Supervise(metricRegistry.ReportEvery(ctx, interval, logger))
	}

	logger.Info("node logic initialized", log.String("state-storage-backend", nodeConfig.StateStorageBackend()))
	return logic
}

func (n *nodeLogic) PublicApi() publicapi.PublicApi {
	return n.publicApi
}
