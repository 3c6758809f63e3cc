// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package jsonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/encoding"
	"github.com/orbs-network/ticketchain/instrumentation/trace"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"golang.org/x/net/context/ctxhttp"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const (
	SEND_TRANSACTION_PATH = "/api/v1/send-transaction"
	RUN_QUERY_PATH        = "/api/v1/run-query"
	TOTALS_PATH           = "/api/v1/totals"
	TICKET_CHAIN_PATH     = "/api/ticketchain"
)

// returned together with the decoded body when the node answers with a non 200 status
type HttpError struct {
	StatusCode int
	Message    string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("node responded with http status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     log.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger log.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.WithTags(log.String("endpoint", endpoint)),
	}
}

func (c *Client) SendTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*SendTransactionResponse, error) {
	res := &SendTransactionResponse{}
	err := c.post(ctx, SEND_TRANSACTION_PATH, FromProtocolSignedTransaction(transaction), res)
	return res, err
}

func (c *Client) RunQuery(ctx context.Context, query *protocol.Query) (*RunQueryResponse, error) {
	res := &RunQueryResponse{}
	err := c.post(ctx, RUN_QUERY_PATH, &RunQueryRequest{Query: FromProtocolQuery(query)}, res)
	return res, err
}

func (c *Client) GetTotals(ctx context.Context) (*TotalsResponse, error) {
	ctx = trace.NewContext(ctx, "JsonClient.GetTotals")
	request, err := http.NewRequest(http.MethodGet, c.endpoint+TOTALS_PATH, nil)
	if err != nil {
		return nil, err
	}
	res := &TotalsResponse{}
	if err := c.do(ctx, request, res); err != nil {
		return nil, err
	}
	return res, nil
}

// the node builds the transaction, the caller signs the returned hash
func (c *Client) BuildMintTransaction(ctx context.Context, signer protocol.Signer, owner primitives.ClientAddress, amount uint32) (*protocol.Transaction, primitives.Sha256, error) {
	params, err := json.Marshal(&BuildMintTxParams{
		Signer:    FromProtocolSigner(signer),
		Recipient: encoding.EncodeAddress(owner),
		Amount:    &amount,
	})
	if err != nil {
		return nil, nil, err
	}

	res := &BuildMintTxResponse{}
	if err := c.post(ctx, TICKET_CHAIN_PATH, &TicketChainRequest{Method: METHOD_BUILD_MINT_TX, Params: params}, res); err != nil {
		return nil, nil, err
	}

	tx, err := ToProtocolTransaction(res.Transaction)
	if err != nil {
		return nil, nil, errors.Wrap(err, "node returned an invalid transaction")
	}
	txHash, err := decodeBytes(res.TxHash)
	if err != nil {
		return nil, nil, errors.Wrap(err, "node returned an invalid transaction hash")
	}
	return tx, txHash, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, response interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed encoding request")
	}
	request, err := http.NewRequest(http.MethodPost, c.endpoint+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	return c.do(trace.NewContext(ctx, "JsonClient"+path), request, response)
}

func (c *Client) do(ctx context.Context, request *http.Request, response interface{}) error {
	if tracingContext, ok := trace.FromContext(ctx); ok {
		tracingContext.WriteTraceToRequest(request)
	}

	c.logger.Info("sending request", log.String("method", request.Method), log.String("path", request.URL.Path), trace.LogFieldFrom(ctx))
	res, err := ctxhttp.Do(ctx, c.httpClient, request)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", request.Method, request.URL.Path)
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed reading response")
	}

	decodeErr := json.Unmarshal(raw, response)
	if res.StatusCode != http.StatusOK {
		errorResponse := &ErrorResponse{}
		_ = json.Unmarshal(raw, errorResponse)
		return &HttpError{StatusCode: res.StatusCode, Message: errorResponse.Error}
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "failed decoding response")
	}
	return nil
}
