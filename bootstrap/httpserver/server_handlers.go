// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/crypto/encoding"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/jsonapi"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/publicapi"
	"net/http"
)

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJsonResponse(w, http.StatusOK, s.metricRegistry.ExportAll())
}

func (s *HttpServer) sendTransactionHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	request := &jsonapi.SendTransactionRequest{}
	if e := readInput(w, r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	tx, err := jsonapi.ToProtocolSignedTransaction(request)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}

	s.logger.Info("http server received send-transaction", trace.LogFieldFrom(ctx))
	code, response, e := s.sendTransaction(ctx, tx)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	s.writeJsonResponse(w, code, response)
}

func (s *HttpServer) sendTransaction(ctx context.Context, tx *protocol.SignedTransaction) (int, *jsonapi.SendTransactionResponse, *httpErr) {
	output, err := s.publicApi.SendTransaction(ctx, tx)
	if output == nil {
		return 0, nil, &httpErr{http.StatusInternalServerError, log.Error(err), errorMessage(err, "send transaction returned no output")}
	}

	requestStatus := publicapi.TransactionRequestStatus(output)
	response := jsonapi.FromTransactionOutput(output, requestStatus)
	if err != nil {
		response.Error = err.Error()
	}
	return translateRequestStatusToHttpCode(requestStatus), response, nil
}

func (s *HttpServer) runQueryHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	request := &jsonapi.RunQueryRequest{}
	if e := readInput(w, r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	query, err := jsonapi.ToProtocolQuery(request.Query)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}

	s.logger.Info("http server received run-query", trace.LogFieldFrom(ctx))
	output, err := s.publicApi.RunQuery(ctx, query)
	if output == nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), errorMessage(err, "run query returned no output")})
		return
	}

	requestStatus := publicapi.QueryRequestStatus(output)
	response := jsonapi.FromQueryOutput(output, requestStatus)
	if err != nil {
		response.Error = err.Error()
	}
	s.writeJsonResponse(w, translateRequestStatusToHttpCode(requestStatus), response)
}

func (s *HttpServer) totalsHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	response, e := s.totals(ctx)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	s.writeJsonResponse(w, http.StatusOK, response)
}

func (s *HttpServer) totals(ctx context.Context) (*jsonapi.TotalsResponse, *httpErr) {
	totals, err := s.publicApi.GetTotals(ctx)
	if err != nil {
		return nil, &httpErr{http.StatusInternalServerError, log.Error(err), err.Error()}
	}
	return &jsonapi.TotalsResponse{
		Total:       totals.Total,
		LastOwner:   jsonapi.EncodeAddress(totals.LastOwner),
		StateHeight: uint64(totals.StateHeight),
	}, nil
}

func (s *HttpServer) ticketChainHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	request := &jsonapi.TicketChainRequest{}
	if e := readInput(w, r, request); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	s.logger.Info("http server received ticketchain request", log.String("method", request.Method), trace.LogFieldFrom(ctx))
	switch request.Method {
	case jsonapi.METHOD_GET_TOTALS:
		s.totalsHandler(ctx, w, r)
	case jsonapi.METHOD_BUILD_MINT_TX, jsonapi.METHOD_BUILD_MINT_TX_SHORT:
		s.buildMintTx(ctx, w, request.Params)
	case jsonapi.METHOD_SUBMIT_TX:
		s.submitTx(ctx, w, request.Params)
	default:
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.String("method", request.Method), "unknown method"})
	}
}

func (s *HttpServer) buildMintTx(ctx context.Context, w http.ResponseWriter, rawParams json.RawMessage) {
	params := &jsonapi.BuildMintTxParams{}
	if err := json.Unmarshal(rawParams, params); err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "invalid params"})
		return
	}
	if params.Amount == nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, nil, "amount is required"})
		return
	}
	signer, err := jsonapi.ToProtocolSigner(params.Signer)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}
	owner, err := encoding.DecodeAddress(params.Recipient)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "invalid recipient address"})
		return
	}

	output, err := s.publicApi.BuildMintTransaction(ctx, &publicapi.BuildMintTransactionInput{
		Signer: signer,
		Owner:  owner,
		Amount: *params.Amount,
	})
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}

	s.writeJsonResponse(w, http.StatusOK, &jsonapi.BuildMintTxResponse{
		Transaction: jsonapi.FromProtocolTransaction(output.Transaction),
		TxHash:      encoding.EncodeHex(output.TxHash),
	})
}

func (s *HttpServer) submitTx(ctx context.Context, w http.ResponseWriter, rawParams json.RawMessage) {
	params := &jsonapi.SubmitTxParams{}
	if err := json.Unmarshal(rawParams, params); err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "invalid params"})
		return
	}
	tx, err := jsonapi.ToProtocolSignedTransaction(params.SignedTx)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()})
		return
	}
	txHash, err := digest.CalcTxHash(tx.Transaction)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.Error(err), "failed hashing transaction"})
		return
	}

	code, response, e := s.sendTransaction(ctx, tx)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	s.writeJsonResponse(w, code, &jsonapi.SubmitTxResponse{
		Status: response.TransactionStatus,
		Hash:   encoding.EncodeHex(txHash),
		Error:  response.Error,
	})
}

func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	return err.Error()
}
