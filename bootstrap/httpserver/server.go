// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/config"
	"github.com/orbs-network/ticketchain/instrumentation/logfields"
	"github.com/orbs-network/ticketchain/instrumentation/metric"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/jsonapi"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/publicapi"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"
)

var LogTag = log.String("adapter", "http-server")

const maxRequestBodyBytes = 1 << 20

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

type HttpServer struct {
	govnr.TreeSupervisor
	sync.Mutex
	httpServer     *http.Server
	listener       net.Listener
	cancel         context.CancelFunc
	logger         log.Logger
	publicApi      publicapi.PublicApi
	metricRegistry metric.Registry
	config         config.HttpServerConfig
	port           int
}

func NewHttpServer(parent context.Context, cfg config.HttpServerConfig, logger log.Logger, publicApi publicapi.PublicApi, metricRegistry metric.Registry) (*HttpServer, error) {
	server := &HttpServer{
		logger:         logger.WithTags(LogTag),
		publicApi:      publicApi,
		metricRegistry: metricRegistry,
		config:         cfg,
	}

	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", cfg.HttpAddress())
	}
	server.port = listener.Addr().(*net.TCPAddr).Port
	if maxConnections := cfg.HttpMaxConnections(); maxConnections > 0 {
		listener = netutil.LimitListener(listener, int(maxConnections))
	}
	server.listener = listener
	server.httpServer = &http.Server{
		Handler:     server.createRouter(),
		ReadTimeout: 30 * time.Second,
	}

	ctx, cancel := context.WithCancel(parent)
	server.cancel = cancel
	server.Supervise(govnr.Forever(ctx, "http server", logfields.GovnrErrorer(server.logger), func() {
		if err := server.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			server.logger.Error("http server stopped serving", log.Error(err))
		}
		<-ctx.Done()
	}))

	server.logger.Info("started http server", log.String("address", listener.Addr().String()))
	return server, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	s.Lock()
	defer s.Unlock()
	s.cancel()
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := http.NewServeMux()
	router.Handle(jsonapi.SEND_TRANSACTION_PATH, s.entryPoint("HttpServer.SendTransaction", http.MethodPost, s.sendTransactionHandler))
	router.Handle(jsonapi.RUN_QUERY_PATH, s.entryPoint("HttpServer.RunQuery", http.MethodPost, s.runQueryHandler))
	router.Handle(jsonapi.TOTALS_PATH, s.entryPoint("HttpServer.GetTotals", http.MethodGet, s.totalsHandler))
	router.Handle(jsonapi.TICKET_CHAIN_PATH, s.entryPoint("HttpServer.TicketChain", http.MethodPost, s.ticketChainHandler))
	router.Handle("/metrics", http.HandlerFunc(s.dumpMetrics))
	router.Handle("/status", http.HandlerFunc(s.getStatus))
	router.Handle("/robots.txt", http.HandlerFunc(s.robots))

	if s.config.Profiling() {
		registerPprof(router)
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.config.HttpCorsAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler(router)
}

// every api route gets its own trace, continuing the caller's when it sent one
func (s *HttpServer) entryPoint(name string, method string, handler func(ctx context.Context, w http.ResponseWriter, r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			s.writeErrorResponseAndLog(w, &httpErr{http.StatusMethodNotAllowed, log.String("method", r.Method), "method not allowed"})
			return
		}
		ctx := trace.NewFromRequest(r.Context(), r, name)
		handler(ctx, w, r)
	})
}

func readInput(w http.ResponseWriter, r *http.Request, into interface{}) *httpErr {
	if r.Body == nil {
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	bytes, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		return &httpErr{http.StatusBadRequest, log.Error(err), "failed reading http request body"}
	}
	if len(bytes) == 0 {
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}
	if err := json.Unmarshal(bytes, into); err != nil {
		return &httpErr{http.StatusBadRequest, log.Error(err), "http request is not valid json"}
	}
	return nil
}

func translateRequestStatusToHttpCode(requestStatus protocol.RequestStatus) int {
	switch requestStatus {
	case protocol.REQUEST_STATUS_COMPLETED:
		return http.StatusOK
	case protocol.REQUEST_STATUS_BAD_REQUEST:
		return http.StatusBadRequest
	case protocol.REQUEST_STATUS_REJECTED:
		return http.StatusBadRequest
	case protocol.REQUEST_STATUS_UNAUTHORIZED:
		return http.StatusUnauthorized
	case protocol.REQUEST_STATUS_CONGESTION:
		return http.StatusTooManyRequests
	case protocol.REQUEST_STATUS_SYSTEM_ERROR:
		return http.StatusInternalServerError
	case protocol.REQUEST_STATUS_RESERVED:
		return http.StatusInternalServerError
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) writeJsonResponse(w http.ResponseWriter, code int, response interface{}) {
	bytes, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("failed encoding response", log.Error(err))
		code = http.StatusInternalServerError
		bytes = []byte(`{"error":"failed encoding response"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(bytes); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	s.writeJsonResponse(w, m.code, &jsonapi.ErrorResponse{Error: m.message})
}

func registerPprof(router *http.ServeMux) {
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
}
