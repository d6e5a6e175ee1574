package queries_test

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentStore struct{ mock.Mock }

func (m *MockShipmentStore) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentStore) UpdateByID(
	ctx context.Context,
	id kernel.UUID,
	mutate ports.MutateFunc,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentStore) UpdateByOrderID(
	ctx context.Context,
	orderID string,
	mutate ports.MutateFunc,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentStore) GetByID(id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentStore) GetByOrderID(orderID string) (*shipment.Shipment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentStore) GetByTrackingKey(trackingNumber string, c carrier.Carrier) (*shipment.Shipment, error) {
	args := m.Called(trackingNumber, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentStore) All() []*shipment.Shipment {
	args := m.Called()
	return args.Get(0).([]*shipment.Shipment)
}

func (m *MockShipmentStore) AllInStatuses(statuses ...shipment.Status) []*shipment.Shipment {
	args := m.Called(statuses)
	return args.Get(0).([]*shipment.Shipment)
}
