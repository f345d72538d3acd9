package querybuilder

import "strings"

// UpdateBuilder, tek bir UPDATE ifadesinin atama (SET) listesini ve
// WHERE koşulunu biriktirir.
type UpdateBuilder struct {
	table       string
	assignments []string
	where       string
}

// Update, verilen tablo için yeni bir UPDATE oluşturucusu döndürür.
func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set, "kolon = değer" ataması ekler. Değer olduğu gibi yazılır.
func (b *UpdateBuilder) Set(column, value string) *UpdateBuilder {
	b.assignments = append(b.assignments, assignment(column, value))
	return b
}

// Fields, hazır atama ifadelerini ("kolon = değer") olduğu gibi ekler.
func (b *UpdateBuilder) Fields(assignments ...string) *UpdateBuilder {
	b.assignments = append(b.assignments, assignments...)
	return b
}

// Where, WHERE koşulunu ayarlar. Tekrarlanan çağrılarda son çağrı kazanır.
func (b *UpdateBuilder) Where(condition string) *UpdateBuilder {
	b.where = condition
	return b
}

// Build, biriken durumdan nihai UPDATE stringini üretir. Hiç atama yoksa
// ErrNoFields döner. WHERE atlanabilir: koşulsuz Build tüm tabloyu
// güncelleyen bir ifade üretir ve bu bilinçli bir tasarım kararıdır;
// kütüphane buna karşı bir koruma sunmaz.
func (b *UpdateBuilder) Build() (string, error) {
	if len(b.assignments) == 0 {
		return "", ErrNoFields
	}

	var sql strings.Builder

	sql.WriteString("UPDATE ")
	sql.WriteString(b.table)
	sql.WriteString(" SET ")
	sql.WriteString(strings.Join(b.assignments, ", "))

	writeClause(&sql, "WHERE", b.where)

	return terminate(&sql), nil
}
