package shipmentrepo

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormShipmentRepository implements the ShipmentPersistence port using GORM.
// Save replaces the whole persisted snapshot inside one transaction; Load
// reconstructs every aggregate in its original insertion order.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Load retrieves every persisted shipment, ordered by original insertion
// position, with tracking events in append order.
func (r *GormShipmentRepository) Load(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Order("position ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		shipments = append(shipments, aggregate)
	}

	return shipments, nil
}

// Save persists the full snapshot, replacing the previous one.
// The delete-and-insert runs in a single transaction so readers never see
// a half-written snapshot.
func (r *GormShipmentRepository) Save(ctx context.Context, shipments []*shipment.Shipment) error {
	for _, aggregate := range shipments {
		if err := aggregate.Validate(); err != nil {
			return err
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&TrackingEventDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&ShipmentDTO{}).Error; err != nil {
			return err
		}

		if len(shipments) == 0 {
			return nil
		}

		dtos := make([]ShipmentDTO, 0, len(shipments))
		for position, aggregate := range shipments {
			dtos = append(dtos, fromDomain(aggregate, position))
		}

		return tx.Create(&dtos).Error
	})
}
