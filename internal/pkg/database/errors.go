package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Códigos SQLSTATE usados para classificar falhas de escrita.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pqCode(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

// IsUniqueViolation informa se o erro do driver é violação de UNIQUE/PK.
func IsUniqueViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeUniqueViolation
}

// IsForeignKeyViolation informa se o erro do driver é violação de chave estrangeira
// (linha referenciada inexistente no INSERT, ou linha ainda referenciada no DELETE).
func IsForeignKeyViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeForeignKeyViolation
}

// IsCheckViolation informa se o erro do driver é violação de CHECK.
func IsCheckViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == codeCheckViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern monta o padrão de ILIKE para "contém", escapando os curingas
// digitados pelo usuário (o ESCAPE padrão do Postgres é a barra invertida).
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
