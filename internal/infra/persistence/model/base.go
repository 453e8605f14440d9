// Package model contains the GORM structs mapped to database tables.
package model

import "github.com/google/uuid"

// assignID gives a row a time-ordered ID unless the caller already chose one.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// AllModels lists every model for migrations and query generation.
func AllModels() []any {
	return []any{
		&ShipModel{},
		&UserModel{},
		&UserPushTokenModel{},
		&BorderPointModel{},
		&NotificationTypeModel{},
		&NotificationModel{},
		&NotificationAttemptModel{},
		&ShipBoundaryStateModel{},
	}
}
