package repository

import (
	"context"
	"errors"

	"github.com/Onwuagba/Telinga/internal/model"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("CUSTOMER_NOT_FOUND")

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(id int64) (*model.Customer, error)
	GetByPhone(phone string) (*model.Customer, error)
	GetByEmail(email string) (*model.Customer, error)
}

type Customer struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &Customer{db: db}
}

func (c *Customer) Create(ctx context.Context, customer *model.Customer) error {
	db := GetTx(ctx, c.db)
	return db.Create(customer).Error
}

func (c *Customer) GetByID(id int64) (*model.Customer, error) {
	var customer model.Customer

	err := c.db.Preload("Template").Where("id = ?", id).First(&customer).Error
	if err == nil {
		return &customer, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}

	return nil, err
}

func (c *Customer) GetByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer

	err := c.db.Where("phone_number = ?", phone).First(&customer).Error
	if err == nil {
		return &customer, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}

	return nil, err
}

func (c *Customer) GetByEmail(email string) (*model.Customer, error) {
	var customer model.Customer

	err := c.db.Where("LOWER(email) = LOWER(?)", email).First(&customer).Error
	if err == nil {
		return &customer, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}

	return nil, err
}
