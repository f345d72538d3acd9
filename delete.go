package querybuilder

import "strings"

// DeleteBuilder, tek bir DELETE ifadesinin WHERE koşulunu tutar.
type DeleteBuilder struct {
	table string
	where string
}

// Delete, verilen tablo için yeni bir DELETE oluşturucusu döndürür.
func Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

// Where, WHERE koşulunu ayarlar. Tekrarlanan çağrılarda son çağrı kazanır.
func (b *DeleteBuilder) Where(condition string) *DeleteBuilder {
	b.where = condition
	return b
}

// Build, nihai DELETE stringini üretir. WHERE atlanabilir: koşulsuz Build
// tüm tabloyu silen bir ifade üretir — UpdateBuilder ile aynı uyarı
// geçerlidir.
func (b *DeleteBuilder) Build() (string, error) {
	var sql strings.Builder

	sql.WriteString("DELETE FROM ")
	sql.WriteString(b.table)

	writeClause(&sql, "WHERE", b.where)

	return terminate(&sql), nil
}
