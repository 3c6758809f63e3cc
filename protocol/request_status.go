// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

// outcome of a client request as seen by the transport layer
type RequestStatus uint16

const (
	REQUEST_STATUS_RESERVED     RequestStatus = 0
	REQUEST_STATUS_COMPLETED    RequestStatus = 1
	REQUEST_STATUS_BAD_REQUEST  RequestStatus = 2
	REQUEST_STATUS_REJECTED     RequestStatus = 3
	REQUEST_STATUS_UNAUTHORIZED RequestStatus = 4
	REQUEST_STATUS_CONGESTION   RequestStatus = 5
	REQUEST_STATUS_SYSTEM_ERROR RequestStatus = 6
)

func (s RequestStatus) String() string {
	switch s {
	case REQUEST_STATUS_RESERVED:
		return "REQUEST_STATUS_RESERVED"
	case REQUEST_STATUS_COMPLETED:
		return "REQUEST_STATUS_COMPLETED"
	case REQUEST_STATUS_BAD_REQUEST:
		return "REQUEST_STATUS_BAD_REQUEST"
	case REQUEST_STATUS_REJECTED:
		return "REQUEST_STATUS_REJECTED"
	case REQUEST_STATUS_UNAUTHORIZED:
		return "REQUEST_STATUS_UNAUTHORIZED"
	case REQUEST_STATUS_CONGESTION:
		return "REQUEST_STATUS_CONGESTION"
	case REQUEST_STATUS_SYSTEM_ERROR:
		return "REQUEST_STATUS_SYSTEM_ERROR"
	}
	return "UNKNOWN"
}
