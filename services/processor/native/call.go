// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"github.com/orbs-network/ticketchain/protocol"
	"github.com/orbs-network/ticketchain/services/processor/native/types"
	"github.com/pkg/errors"
	"reflect"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// receiver and context come before the transaction arguments
const leadingNonArgumentInputs = 2

func verifyMethodSignature(methodInstance interface{}, functionNameForErrors string) error {
	methodType := reflect.TypeOf(methodInstance)
	if methodType == nil || methodType.Kind() != reflect.Func {
		return errors.Errorf("method '%s' has no implementation", functionNameForErrors)
	}
	if methodType.NumIn() < leadingNonArgumentInputs || methodType.In(1) != contextType {
		return errors.Errorf("method '%s' must take a receiver followed by context.Context", functionNameForErrors)
	}
	if methodType.NumOut() == 0 || methodType.Out(methodType.NumOut()-1) != errorType {
		return errors.Errorf("method '%s' must return an error as its last result", functionNameForErrors)
	}
	return nil
}

func (s *service) processMethodCall(ctx context.Context, contractInstance types.ContractInstance, methodInstance interface{}, args []protocol.Argument, functionNameForErrors string) (contractOutputArgs []protocol.Argument, contractOutputErr error, err error) {

	defer func() {
		if r := recover(); r != nil {
			contractOutputErr = errors.Errorf("%s", r)
			contractOutputArgs = createMethodOutputArgsWithString(contractOutputErr.Error())
		}
	}()

	// verify input args
	inValues, err := prepareMethodInputArgsForCall(methodInstance, args, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	// execute the call
	callValues := append([]reflect.Value{reflect.ValueOf(contractInstance), reflect.ValueOf(ctx)}, inValues...)
	outValues := reflect.ValueOf(methodInstance).Call(callValues)

	// split the trailing error from the results
	last := outValues[len(outValues)-1]
	if !last.IsNil() {
		contractOutputErr = last.Interface().(error)
		return createMethodOutputArgsWithString(contractOutputErr.Error()), contractOutputErr, nil
	}

	// create output args
	contractOutputArgs, err = createMethodOutputArgs(outValues[:len(outValues)-1], functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	// done
	return contractOutputArgs, nil, nil
}

func prepareMethodInputArgsForCall(methodInstance interface{}, args []protocol.Argument, functionNameForErrors string) ([]reflect.Value, error) {
	res := []reflect.Value{}
	methodType := reflect.ValueOf(methodInstance).Type()
	expected := methodType.NumIn() - leadingNonArgumentInputs

	if len(args) < expected {
		return nil, errors.Errorf("method '%s' takes %d args but received less", functionNameForErrors, expected)
	}
	if len(args) > expected {
		return nil, errors.Errorf("method '%s' takes %d args but received more", functionNameForErrors, expected)
	}

	for i, arg := range args {
		inType := methodType.In(i + leadingNonArgumentInputs)

		// translate argument type
		switch inType.Kind() {
		case reflect.Uint32:
			if arg.Type != protocol.ARGUMENT_TYPE_UINT_32_VALUE {
				return nil, errors.Errorf("method '%s' expects arg %d to be uint32 but it has %s", functionNameForErrors, i, arg)
			}
			res = append(res, reflect.ValueOf(arg.Uint32Value).Convert(inType))
		case reflect.Uint64:
			if arg.Type != protocol.ARGUMENT_TYPE_UINT_64_VALUE {
				return nil, errors.Errorf("method '%s' expects arg %d to be uint64 but it has %s", functionNameForErrors, i, arg)
			}
			res = append(res, reflect.ValueOf(arg.Uint64Value).Convert(inType))
		case reflect.String:
			if arg.Type != protocol.ARGUMENT_TYPE_STRING_VALUE {
				return nil, errors.Errorf("method '%s' expects arg %d to be string but it has %s", functionNameForErrors, i, arg)
			}
			res = append(res, reflect.ValueOf(arg.StringValue).Convert(inType))
		case reflect.Slice:
			if inType.Elem().Kind() != reflect.Uint8 {
				return nil, errors.Errorf("method '%s' arg %d slice type is not byte", functionNameForErrors, i)
			}
			if arg.Type != protocol.ARGUMENT_TYPE_BYTES_VALUE {
				return nil, errors.Errorf("method '%s' expects arg %d to be bytes but it has %s", functionNameForErrors, i, arg)
			}
			res = append(res, reflect.ValueOf(arg.BytesValue).Convert(inType))
		default:
			return nil, errors.Errorf("method '%s' expects arg %d to be a known type but it has %s", functionNameForErrors, i, arg)
		}
	}

	return res, nil
}

func createMethodOutputArgs(args []reflect.Value, functionNameForErrors string) ([]protocol.Argument, error) {
	res := []protocol.Argument{}
	for i, arg := range args {
		switch arg.Kind() {
		case reflect.Uint32:
			res = append(res, protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: uint32(arg.Uint())})
		case reflect.Uint64:
			res = append(res, protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: arg.Uint()})
		case reflect.String:
			res = append(res, protocol.Argument{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: arg.String()})
		case reflect.Slice:
			if arg.Type().Elem().Kind() != reflect.Uint8 {
				return nil, errors.Errorf("method '%s' output arg %d slice type is not byte", functionNameForErrors, i)
			}
			res = append(res, protocol.Argument{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: arg.Bytes()})
		default:
			return nil, errors.Errorf("method '%s' output arg %d is of unsupported type", functionNameForErrors, i)
		}
	}
	return res, nil
}

func createMethodOutputArgsWithString(str string) []protocol.Argument {
	return []protocol.Argument{
		{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: str},
	}
}
