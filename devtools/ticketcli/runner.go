// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package ticketcli

import (
	"bytes"
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/ticketchain/crypto/digest"
	"github.com/orbs-network/ticketchain/crypto/encoding"
	"github.com/orbs-network/ticketchain/jsonapi"
	"github.com/orbs-network/ticketchain/primitives"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"io/ioutil"
	"time"
)

const DEFAULT_HOST = "http://localhost:8080"

func ShowUsage() string {
	return `
Usage:  $ ticketcli keygen [--scheme eddsa|ecdsa-secp256k1] [--key-file path]
Usage:  $ ticketcli mint --amount N [--owner 0x..] [--key hex --scheme eddsa|ecdsa-secp256k1] [--key-file path] [--host url]
Usage:  $ ticketcli totals [--host url]
Usage:  $ ticketcli owner [--host url]
`
}

type CommandRunner struct {
	logger  log.Logger
	timeout time.Duration
}

func NewCommandRunner(logger log.Logger, timeout time.Duration) *CommandRunner {
	return &CommandRunner{logger: logger, timeout: timeout}
}

func (r *CommandRunner) Run(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return ShowUsage(), nil
	}

	switch args[0] {
	case "keygen":
		return r.HandleKeygenCommand(args[1:])
	case "mint":
		return r.HandleMintCommand(ctx, args[1:])
	case "totals":
		return r.HandleTotalsCommand(ctx, args[1:])
	case "owner":
		return r.HandleOwnerCommand(ctx, args[1:])
	}
	return ShowUsage(), errors.Errorf("unknown command '%s'", args[0])
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(ioutil.Discard)
	return flagSet
}

func (r *CommandRunner) HandleKeygenCommand(args []string) (string, error) {
	flagSet := newFlagSet("keygen")
	scheme := flagSet.String("scheme", jsonapi.SIGNER_SCHEME_EDDSA, "signer scheme of the new key")
	keyFilePath := flagSet.String("key-file", DEFAULT_KEY_FILE, "where to store the new key")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	key, err := generateKey(*scheme)
	if err != nil {
		return "", err
	}
	content, err := writeKeyFile(*keyFilePath, *scheme, key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("created %s key in %s\naddress: %s\n", content.Scheme, *keyFilePath, content.Address), nil
}

func (r *CommandRunner) HandleMintCommand(ctx context.Context, args []string) (string, error) {
	flagSet := newFlagSet("mint")
	ownerHex := flagSet.String("owner", "", "address to mint for, defaults to the signer's own address")
	amount := flagSet.Uint32("amount", 0, "number of tickets to mint")
	privateKeyHex := flagSet.String("key", "", "private key in hex, instead of reading the key file")
	scheme := flagSet.String("scheme", jsonapi.SIGNER_SCHEME_EDDSA, "signer scheme of --key")
	keyFilePath := flagSet.String("key-file", DEFAULT_KEY_FILE, "key file written by keygen")
	host := flagSet.String("host", DEFAULT_HOST, "node http endpoint")
	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}
	if !flagSet.Changed("amount") {
		return "", errors.New("--amount is required")
	}

	var key signingKey
	var err error
	if *privateKeyHex != "" {
		key, err = keyFromPrivateKeyHex(*scheme, *privateKeyHex)
	} else {
		key, err = readKeyFile(*keyFilePath)
	}
	if err != nil {
		return "", err
	}

	owner, err := r.ownerAddress(key, *ownerHex)
	if err != nil {
		return "", err
	}

	client := jsonapi.NewClient(*host, r.timeout, r.logger)
	tx, nodeTxHash, err := client.BuildMintTransaction(ctx, key.Signer(), owner, *amount)
	if err != nil {
		return "", errors.Wrap(err, "failed building mint transaction")
	}
	signed, err := signLocally(key, tx, nodeTxHash)
	if err != nil {
		return "", err
	}

	response, err := client.SendTransaction(ctx, signed)
	if err != nil {
		return "", errors.Wrap(err, "mint failed")
	}
	txHash := ""
	if response.Receipt != nil {
		txHash = response.Receipt.TxHash
	}
	return fmt.Sprintf("minted %d tickets for %s\nstatus: %s\ntx: %s\nstate height: %d\n", *amount, encoding.EncodeAddress(owner), response.TransactionStatus, txHash, response.StateHeight), nil
}

func (r *CommandRunner) ownerAddress(key signingKey, ownerHex string) (primitives.ClientAddress, error) {
	if ownerHex == "" {
		return digest.CalcClientAddressOfSigner(key.Signer())
	}
	owner, err := encoding.DecodeAddress(ownerHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --owner")
	}
	return owner, nil
}

// the node builds the transaction but the hash that gets signed is always computed here
func signLocally(key signingKey, tx *protocol.Transaction, nodeTxHash primitives.Sha256) (*protocol.SignedTransaction, error) {
	txHash, err := digest.CalcTxHash(tx)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(txHash, nodeTxHash) {
		return nil, errors.Errorf("node returned tx hash %s but the transaction hashes to %s", encoding.EncodeHex(nodeTxHash), encoding.EncodeHex(txHash))
	}
	sig, err := key.Sign(txHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed signing transaction")
	}
	return &protocol.SignedTransaction{Transaction: tx, Signature: sig}, nil
}

func (r *CommandRunner) totals(ctx context.Context, name string, args []string) (*jsonapi.TotalsResponse, error) {
	flagSet := newFlagSet(name)
	host := flagSet.String("host", DEFAULT_HOST, "node http endpoint")
	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Wrap(err, "flag issues")
	}
	return jsonapi.NewClient(*host, r.timeout, r.logger).GetTotals(ctx)
}

func (r *CommandRunner) HandleTotalsCommand(ctx context.Context, args []string) (string, error) {
	totals, err := r.totals(ctx, "totals", args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d\n", totals.Total), nil
}

func (r *CommandRunner) HandleOwnerCommand(ctx context.Context, args []string) (string, error) {
	totals, err := r.totals(ctx, "owner", args)
	if err != nil {
		return "", err
	}
	if totals.LastOwner == nil {
		return "none\n", nil
	}
	return *totals.LastOwner + "\n", nil
}
