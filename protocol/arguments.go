// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

type ArgumentType uint16

const (
	ARGUMENT_TYPE_UINT_32_VALUE ArgumentType = 0
	ARGUMENT_TYPE_UINT_64_VALUE ArgumentType = 1
	ARGUMENT_TYPE_STRING_VALUE  ArgumentType = 2
	ARGUMENT_TYPE_BYTES_VALUE   ArgumentType = 3
)

func (t ArgumentType) String() string {
	switch t {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return "ARGUMENT_TYPE_UINT_32_VALUE"
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return "ARGUMENT_TYPE_UINT_64_VALUE"
	case ARGUMENT_TYPE_STRING_VALUE:
		return "ARGUMENT_TYPE_STRING_VALUE"
	case ARGUMENT_TYPE_BYTES_VALUE:
		return "ARGUMENT_TYPE_BYTES_VALUE"
	}
	return "UNKNOWN"
}

// tagged union, only the field matching Type is meaningful
type Argument struct {
	Type        ArgumentType
	Uint32Value uint32
	Uint64Value uint64
	StringValue string
	BytesValue  []byte
}

func (a Argument) Native() interface{} {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return a.Uint32Value
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return a.Uint64Value
	case ARGUMENT_TYPE_STRING_VALUE:
		return a.StringValue
	case ARGUMENT_TYPE_BYTES_VALUE:
		return a.BytesValue
	}
	return nil
}

func (a Argument) String() string {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return fmt.Sprintf("uint32:%d", a.Uint32Value)
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return fmt.Sprintf("uint64:%d", a.Uint64Value)
	case ARGUMENT_TYPE_STRING_VALUE:
		return fmt.Sprintf("string:%s", a.StringValue)
	case ARGUMENT_TYPE_BYTES_VALUE:
		return fmt.Sprintf("bytes:%s", hex.EncodeToString(a.BytesValue))
	}
	return "unknown"
}

func ArgumentFromNative(arg interface{}) (Argument, error) {
	switch v := arg.(type) {
	case uint32:
		return Argument{Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: v}, nil
	case uint64:
		return Argument{Type: ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v}, nil
	case string:
		return Argument{Type: ARGUMENT_TYPE_STRING_VALUE, StringValue: v}, nil
	case []byte:
		return Argument{Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v}, nil
	}
	return Argument{}, errors.Errorf("unsupported argument type %T", arg)
}

func ArgumentsFromNatives(args ...interface{}) ([]Argument, error) {
	res := make([]Argument, 0, len(args))
	for i, arg := range args {
		a, err := ArgumentFromNative(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		res = append(res, a)
	}
	return res, nil
}

func ArgumentsToNatives(args []Argument) []interface{} {
	res := make([]interface{}, 0, len(args))
	for _, a := range args {
		res = append(res, a.Native())
	}
	return res
}

func ArgumentsString(args []Argument) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
