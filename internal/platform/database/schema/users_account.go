// Copyright (c) 2026 Randfin. All rights reserved.

package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	Role:         "role",
	IsActive:     "isactive",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
