package repository

import (
	"context"
	"errors"

	"github.com/Onwuagba/Telinga/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDeliveryRecordNotFound = errors.New("DELIVERY_RECORD_NOT_FOUND")
var ErrDeliveryRecordDuplicate = errors.New("DELIVERY_RECORD_DUPLICATE")

type DeliveryRepository interface {
	Create(ctx context.Context, record *model.DeliveryRecord) error
	UpdateStatus(ctx context.Context, id int64, status model.DeliveryStatus) error
	GetByProviderMsgID(providerMsgID string) (*model.DeliveryRecord, error)
	FindByStatuses(statuses []model.DeliveryStatus, limit int) ([]model.DeliveryRecord, error)
	CountAttempts(ctx context.Context, customerID int64) (int, error)
}

type Delivery struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &Delivery{db: db}
}

func (d *Delivery) Create(ctx context.Context, record *model.DeliveryRecord) error {
	db := GetTx(ctx, d.db)
	err := db.Create(record).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDeliveryRecordDuplicate
	}

	return err
}

func (d *Delivery) UpdateStatus(ctx context.Context, id int64, status model.DeliveryStatus) error {
	db := GetTx(ctx, d.db)
	return db.Model(&model.DeliveryRecord{}).Where("id = ?", id).
		Update("status", status).Error
}

func (d *Delivery) GetByProviderMsgID(providerMsgID string) (*model.DeliveryRecord, error) {
	var record model.DeliveryRecord

	err := d.db.Preload("Customer").Where("provider_msg_id = ?", providerMsgID).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeliveryRecordNotFound
	}

	return nil, err
}

func (d *Delivery) FindByStatuses(statuses []model.DeliveryStatus, limit int) ([]model.DeliveryRecord, error) {
	var records []model.DeliveryRecord

	err := d.db.Where("status IN ?", statuses).
		Order("created_at ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (d *Delivery) CountAttempts(ctx context.Context, customerID int64) (int, error) {
	var count int64

	err := d.db.Model(&model.DeliveryRecord{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
