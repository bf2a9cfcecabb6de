// Package store keeps the shop's state in memory. Everything is seeded
// from fixtures at start-up and discarded on exit.
package store

import "github.com/houranii/tyreshop/fixtures"

type Store struct {
	Tyres     *TyreStore
	Locations *LocationStore
	Customers *CustomerStore
	Orders    *OrderStore
	Users     *UserStore
}

func New(d *fixtures.Data) *Store {
	return &Store{
		Tyres:     NewTyreStore(d.Tyres),
		Locations: NewLocationStore(d.Locations),
		Customers: NewCustomerStore(d.Customers),
		Orders:    NewOrderStore(d.Orders),
		Users:     NewUserStore(d.Users),
	}
}
