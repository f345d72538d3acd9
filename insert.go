package querybuilder

import (
	"fmt"
	"strings"
)

// InsertBuilder, tek bir INSERT ifadesinin kolon ve değer listelerini
// biriktirir. Kolonlar ve değerler pozisyonel olarak hizalıdır; sayıları
// eşleşmezse Build hata döndürür.
type InsertBuilder struct {
	table  string
	fields []string
	values []string
}

// Insert, verilen tablo için yeni bir INSERT oluşturucusu döndürür.
func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Fields, kolon listesine ekleme yapar.
func (b *InsertBuilder) Fields(fields ...string) *InsertBuilder {
	b.fields = append(b.fields, fields...)
	return b
}

// Values, değer listesine ekleme yapar. Değerler olduğu gibi yazılır;
// tırnaklama ve kaçış çağıranın sorumluluğundadır.
func (b *InsertBuilder) Values(values ...string) *InsertBuilder {
	b.values = append(b.values, values...)
	return b
}

// Set, hizalı bir kolon-değer çifti ekler. Fields/Values ikilisine
// alternatif bir kısayoldur; kolon sırası çağrı sırasıdır.
func (b *InsertBuilder) Set(field, value string) *InsertBuilder {
	b.fields = append(b.fields, field)
	b.values = append(b.values, value)
	return b
}

// Build, biriken durumdan nihai INSERT stringini üretir.
//
// Kolon ve değer sayıları eşleşmezse ErrFieldValueMismatch döner: sessizce
// kırpmak veya doldurmak, değerleri yanlış kolonlara yazardı. İki liste de
// boşsa ErrNoFields döner.
func (b *InsertBuilder) Build() (string, error) {
	if len(b.fields) != len(b.values) {
		return "", fmt.Errorf("%w: %d fields, %d values",
			ErrFieldValueMismatch, len(b.fields), len(b.values))
	}
	if len(b.fields) == 0 {
		return "", ErrNoFields
	}

	var sql strings.Builder

	sql.WriteString("INSERT INTO ")
	sql.WriteString(b.table)
	sql.WriteString(" (")
	sql.WriteString(strings.Join(b.fields, ", "))
	sql.WriteString(") VALUES (")
	sql.WriteString(strings.Join(b.values, ", "))
	sql.WriteString(")")

	return terminate(&sql), nil
}
