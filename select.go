package querybuilder

import "strings"

// SelectBuilder, tek bir SELECT ifadesinin cümle (clause) durumunu biriktirir.
//
// Oluşturucu, Laravel ve Symfony'nin Query Builder mantığından esinlenmiştir:
// her ayarlayıcı metot aynı oluşturucuyu döndürür ve zincirleme çağrıya izin
// verir. Çağrı sırası ne olursa olsun, Build her cümleyi ifade türüne özgü
// sabit sırada yazar. SelectBuilder örnekleri **concurrent-safe** değildir;
// paralel kullanımlar için Clone() ile çoğaltılmalıdır.
//
// Genel kullanım örneği:
//
//	sql, err := querybuilder.Select("users").
//	    Fields("id", "name").
//	    Where("status = 'active'").
//	    OrderByDesc("created_at").
//	    Limit(10).
//	    Build()
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
type SelectBuilder struct {
	// Table name and alias
	table string
	alias string

	// Selected columns
	fields []string

	// Query clauses
	joins   []joinClause
	where   string
	groupBy []string
	having  string
	orders  []orderClause

	// Limits
	limit  *int
	offset *int
}

// Select, verilen tablo için yeni bir SELECT oluşturucusu döndürür.
// Tablo adı oluşturma anında sabitlenir ve sonradan değiştirilemez.
func Select(table string) *SelectBuilder {
	return &SelectBuilder{table: table}
}

// As, tablo için AS aliasını ayarlar.
func (b *SelectBuilder) As(alias string) *SelectBuilder {
	b.alias = alias
	return b
}

// Fields, sonuç kümesinde istenen kolonları ekler. Hiç çağrılmazsa veya
// boş çağrılırsa Build "*" yazar.
func (b *SelectBuilder) Fields(fields ...string) *SelectBuilder {
	b.fields = append(b.fields, fields...)
	return b
}

// Join, verilen türde bir JOIN ekler. JOIN türü her zaman açıkça verilir;
// örtük bir varsayılan yoktur. Koşul, ON ifadesine olduğu gibi yazılır.
func (b *SelectBuilder) Join(kind JoinKind, table, condition string) *SelectBuilder {
	b.joins = append(b.joins, joinClause{
		kind:      kind,
		table:     table,
		condition: condition,
	})
	return b
}

// InnerJoin, INNER JOIN ekler.
func (b *SelectBuilder) InnerJoin(table, condition string) *SelectBuilder {
	return b.Join(JoinInner, table, condition)
}

// LeftJoin, LEFT JOIN ekler.
func (b *SelectBuilder) LeftJoin(table, condition string) *SelectBuilder {
	return b.Join(JoinLeft, table, condition)
}

// RightJoin, RIGHT JOIN ekler.
func (b *SelectBuilder) RightJoin(table, condition string) *SelectBuilder {
	return b.Join(JoinRight, table, condition)
}

// FullJoin, FULL JOIN ekler. Motor desteği çağıranın sorumluluğundadır.
func (b *SelectBuilder) FullJoin(table, condition string) *SelectBuilder {
	return b.Join(JoinFull, table, condition)
}

// Where, WHERE koşulunu ayarlar. Tekrarlanan çağrılar önceki koşulun üzerine
// yazar; birden fazla koşul AND/OR ile önceden birleştirilmelidir.
func (b *SelectBuilder) Where(condition string) *SelectBuilder {
	b.where = condition
	return b
}

// GroupBy, GROUP BY kolonları ekler.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

// Having, HAVING koşulunu ayarlar. Where gibi tek koşul tutar ve
// tekrarlanan çağrılarda son çağrı kazanır.
func (b *SelectBuilder) Having(condition string) *SelectBuilder {
	b.having = condition
	return b
}

// OrderBy, ORDER BY ekler. Birden fazla çağrı sıralama kolonlarını
// çağrı sırasında biriktirir.
func (b *SelectBuilder) OrderBy(column string, direction OrderDirection) *SelectBuilder {
	b.orders = append(b.orders, orderClause{
		column:    column,
		direction: direction,
	})
	return b
}

// OrderByAsc, artan sırada ORDER BY ekler.
func (b *SelectBuilder) OrderByAsc(column string) *SelectBuilder {
	return b.OrderBy(column, OrderAsc)
}

// OrderByDesc, azalan sırada ORDER BY ekler.
func (b *SelectBuilder) OrderByDesc(column string) *SelectBuilder {
	return b.OrderBy(column, OrderDesc)
}

// Limit, LIMIT ekler. Negatif olmayan bir değer beklenir.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

// Offset, OFFSET ekler. Negatif olmayan bir değer beklenir.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// Clone, oluşturucunun derin kopyasını döndürür. Kopya, orijinal ile hiçbir
// dilim (slice) durumunu paylaşmaz.
func (b *SelectBuilder) Clone() *SelectBuilder {
	clone := &SelectBuilder{
		table:  b.table,
		alias:  b.alias,
		where:  b.where,
		having: b.having,
	}

	clone.fields = make([]string, len(b.fields))
	copy(clone.fields, b.fields)

	clone.joins = make([]joinClause, len(b.joins))
	copy(clone.joins, b.joins)

	clone.groupBy = make([]string, len(b.groupBy))
	copy(clone.groupBy, b.groupBy)

	clone.orders = make([]orderClause, len(b.orders))
	copy(clone.orders, b.orders)

	if b.limit != nil {
		n := *b.limit
		clone.limit = &n
	}
	if b.offset != nil {
		n := *b.offset
		clone.offset = &n
	}

	return clone
}

// Build, biriken cümle durumundan nihai SELECT stringini üretir.
// Boş cümleler tamamen atlanır; ifade tek bir ";" ile sonlanır.
func (b *SelectBuilder) Build() (string, error) {
	var sql strings.Builder

	// SELECT
	sql.WriteString("SELECT ")
	if len(b.fields) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.fields, ", "))
	}

	// FROM
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)
	if b.alias != "" {
		sql.WriteString(" AS ")
		sql.WriteString(b.alias)
	}

	// JOIN
	for _, join := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(compileJoin(join))
	}

	// WHERE
	writeClause(&sql, "WHERE", b.where)

	// GROUP BY
	writeClause(&sql, "GROUP BY", strings.Join(b.groupBy, ", "))

	// HAVING
	writeClause(&sql, "HAVING", b.having)

	// ORDER BY
	writeClause(&sql, "ORDER BY", compileOrders(b.orders))

	// LIMIT / OFFSET
	writeIntClause(&sql, "LIMIT", b.limit)
	writeIntClause(&sql, "OFFSET", b.offset)

	return terminate(&sql), nil
}
