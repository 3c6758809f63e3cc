// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"net/http"
)

type StatusResponse struct {
	StateHeight         int64
	CommittedPoolSize   int64
	StateStorageBackend string
	Version             config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	metrics := s.metricRegistry

	s.writeJsonResponse(w, http.StatusOK, &StatusResponse{
		StateHeight:         metricGetGaugeValue(s.logger, metrics, "StateStorage.StateHeight"),
		CommittedPoolSize:   metricGetGaugeValue(s.logger, metrics, "VirtualMachine.CommittedPool.TransactionCount"),
		StateStorageBackend: metricGetString(s.logger, metrics, "StateStorage.Backend"),
		Version:             config.GetVersion(),
	})
}

func metricGetGaugeValue(logger log.Logger, metrics metric.Registry, name string) (value int64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Info("could not retrieve metric", log.String("metric", name))
		}
	}()

	rows := metrics.Get(name).Export().LogRow()
	value = rows[len(rows)-1].Int
	return value
}

func metricGetString(logger log.Logger, metrics metric.Registry, name string) (value string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Info("could not retrieve metric", log.String("metric", name))
		}
	}()

	rows := metrics.Get(name).Export().LogRow()
	value = rows[len(rows)-1].StringVal
	return
}
