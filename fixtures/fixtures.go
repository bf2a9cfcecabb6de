// Package fixtures holds the seed data the shop boots from. Files are
// embedded in the binary and validated on load.
package fixtures

import (
	"embed"
	"fmt"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

type Data struct {
	Tyres     []models.Tyre
	Locations []models.Location
	Users     []models.User
	Customers []models.Customer
	Orders    []models.Order
}

func decode[T any](name, key string) ([]T, error) {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var doc map[string][]T
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	items, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("decode %s: missing top-level %q", name, key)
	}

	seen := make(map[string]struct{}, len(items))
	for i := range items {
		if err := utils.Validate.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		id := idOf(&items[i])
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s[%d]: duplicate id %q", name, i, id)
		}
		seen[id] = struct{}{}
	}
	return items, nil
}

func idOf(v any) string {
	switch r := v.(type) {
	case *models.Tyre:
		return r.ID
	case *models.Location:
		return r.ID
	case *models.User:
		return r.ID
	case *models.Customer:
		return r.ID
	case *models.Order:
		return r.ID
	}
	return ""
}

func LoadTyres() ([]models.Tyre, error) { return decode[models.Tyre]("tyres.yaml", "tyres") }

func LoadLocations() ([]models.Location, error) {
	return decode[models.Location]("locations.yaml", "locations")
}

func LoadUsers() ([]models.User, error) { return decode[models.User]("users.yaml", "users") }

func LoadCustomers() ([]models.Customer, error) {
	return decode[models.Customer]("customers.yaml", "customers")
}

func LoadOrders() ([]models.Order, error) { return decode[models.Order]("orders.yaml", "orders") }

// LoadAll reads every fixture and checks that tyre stock only refers to
// known locations.
func LoadAll() (*Data, error) {
	var (
		d   Data
		err error
	)
	if d.Tyres, err = LoadTyres(); err != nil {
		return nil, err
	}
	if d.Locations, err = LoadLocations(); err != nil {
		return nil, err
	}
	if d.Users, err = LoadUsers(); err != nil {
		return nil, err
	}
	if d.Customers, err = LoadCustomers(); err != nil {
		return nil, err
	}
	if d.Orders, err = LoadOrders(); err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(d.Locations))
	for _, l := range d.Locations {
		known[l.ID] = struct{}{}
	}
	for _, t := range d.Tyres {
		for loc := range t.Stock {
			if _, ok := known[loc]; !ok {
				return nil, fmt.Errorf("tyres.yaml: tyre %s stocks unknown location %q", t.ID, loc)
			}
		}
	}
	return &d, nil
}
