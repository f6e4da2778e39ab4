// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Erros de banco de dados compartilhados pelos repositórios
var (
	ErrNotFound          = errors.New("record not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrDuplicateRecord   = errors.New("duplicate record")
)

// Códigos de erro do PostgreSQL relevantes para escrita
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

// mapWriteError traduz violações de integridade do PostgreSQL para os erros
// sentinela do pacote, preservando o detalhe original
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, pqErr.Detail)
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, pqErr.Detail)
		case pqCheckViolation:
			return fmt.Errorf("constraint violada: %s: %s", pqErr.Constraint, pqErr.Message)
		}
	}
	return err
}
