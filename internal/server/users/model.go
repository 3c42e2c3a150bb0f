package users

import "time"

type Address struct {
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
}

// Customer is a storefront account.
type Customer struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash []byte
	Address      Address
	CreatedAt    time.Time
}

// Employee is a staff account. Role is reported back to the client as is.
type Employee struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash []byte
}

// ProfileUpdate replaces the editable part of a customer record.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Address   Address
}
