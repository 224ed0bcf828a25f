package entity

import "time"

// Customer representa un cliente de la tienda.
type Customer struct {
	ID           int
	Name         string
	IDDocument   string // cédula o RIF, único
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
}
