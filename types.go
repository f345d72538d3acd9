package querybuilder

// ----------------------------------------------------------------------------
// JOIN Types
// ----------------------------------------------------------------------------

// JoinKind, JOIN türünü belirtir. Kapalı bir kümedir; oluşturucular yalnızca
// bu sabitlerle çağrılmalıdır, örtük bir varsayılan JOIN türü yoktur.
type JoinKind string

const (
	JoinInner JoinKind = "INNER"
	JoinLeft  JoinKind = "LEFT"
	JoinRight JoinKind = "RIGHT"
	JoinFull  JoinKind = "FULL"
)

// IsValid, türün geçerli olup olmadığını kontrol eder.
func (k JoinKind) IsValid() bool {
	switch k {
	case JoinInner, JoinLeft, JoinRight, JoinFull:
		return true
	}
	return false
}

// joinClause, tek bir JOIN ifadesini temsil eder.
type joinClause struct {
	kind      JoinKind
	table     string
	condition string // ON koşulu, olduğu gibi yazılır
}

// ----------------------------------------------------------------------------
// ORDER BY Types
// ----------------------------------------------------------------------------

// OrderDirection, sıralama yönünü belirtir.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// IsValid, yönün geçerli olup olmadığını kontrol eder.
func (d OrderDirection) IsValid() bool {
	return d == OrderAsc || d == OrderDesc
}

// orderClause, ORDER BY ifadesindeki tek bir kolonu temsil eder.
type orderClause struct {
	column    string
	direction OrderDirection
}
