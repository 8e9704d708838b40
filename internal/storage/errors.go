package storage

import (
	"errors"
	"fmt"
)

// NotFoundError id référencé absent de sa table
type NotFoundError struct {
	Entite string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d introuvable", e.Entite, e.ID)
}

// ForbiddenError suppression d'une entité protégée refusée
type ForbiddenError struct {
	Raison string
}

func (e *ForbiddenError) Error() string {
	return e.Raison
}

// ConflictError violation d'une contrainte d'unicité ou de cohérence
type ConflictError struct {
	Raison string
}

func (e *ConflictError) Error() string {
	return e.Raison
}

// IsNotFound vérifie si l'erreur est un NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsForbidden vérifie si l'erreur est un ForbiddenError
func IsForbidden(err error) bool {
	var fb *ForbiddenError
	return errors.As(err, &fb)
}

// IsConflict vérifie si l'erreur est un ConflictError
func IsConflict(err error) bool {
	var cf *ConflictError
	return errors.As(err, &cf)
}
