package postgres

import (
	"fmt"
	"strings"
)

// clauseBuilder acumula condiciones WHERE conjuntivas con placeholders
// numerados. Parámetro ausente = sin restricción sobre ese campo.
type clauseBuilder struct {
	clauses []string
	args    []any
}

// eq añade una condición de igualdad si el valor no está vacío.
func (b *clauseBuilder) eq(column string, value string) {
	if value == "" {
		return
	}
	b.add(column+" = $%d", value)
}

// gte / lte añaden condiciones de rango si el valor no es nil.
func (b *clauseBuilder) gte(column string, value any) {
	if value == nil {
		return
	}
	b.add(column+" >= $%d", value)
}

func (b *clauseBuilder) lte(column string, value any) {
	if value == nil {
		return
	}
	b.add(column+" <= $%d", value)
}

// boolEq añade una condición booleana si el puntero no es nil.
func (b *clauseBuilder) boolEq(column string, value *bool) {
	if value == nil {
		return
	}
	b.add(column+" = $%d", *value)
}

func (b *clauseBuilder) add(format string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf(format, len(b.args)))
}

// where devuelve la cláusula WHERE completa (o cadena vacía sin condiciones).
func (b *clauseBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}
